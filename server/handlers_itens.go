package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"propostaserver/extenso"
	"propostaserver/moeda"
	"propostaserver/resolucao"
	"propostaserver/server/middleware"
	"propostaserver/server/types"
	"propostaserver/tributacao"
)

// handleResolverItem separa descrição e fabricante de uma linha digitada,
// usando o catálogo de fabricantes e abreviações do banco.
func (s *Server) handleResolverItem(c *gin.Context) {
	var req types.ResolverItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe o campo texto")
		return
	}

	fabricantes, err := s.db.ListarFabricantes()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar fabricantes", err)
		return
	}
	abreviacoes, err := s.db.ListarAbreviacoes()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar abreviações", err)
		return
	}

	resolvido := resolucao.ResolverLinhaProduto(req.Texto, fabricantes, abreviacoes)
	c.JSON(http.StatusOK, types.ResolverItemResponse{
		Produto:    resolvido.Produto,
		Fabricante: resolvido.Fabricante,
	})
}

// handleRecalcularItem reaplica as regras tributárias da UF sobre o preço de
// um item e devolve o convênio e o fator usados.
func (s *Server) handleRecalcularItem(c *gin.Context) {
	var req types.RecalcularItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe uf e preco")
		return
	}
	if !resolucao.UFValida(req.UF) {
		s.responderErro(c, http.StatusBadRequest, "uf desconhecida: "+req.UF)
		return
	}

	preco := tributacao.Recalcular(req.Preco, req.Descricao, req.Marca, req.UF)
	c.JSON(http.StatusOK, types.RecalcularItemResponse{
		Preco:    preco,
		Convenio: preco.Convenio.String(),
		Fator:    tributacao.FatorICMS(req.UF, req.Marca).String(),
	})
}

// handleTotaisItens totaliza uma lista de itens sem exigir a proposta
// completa.
func (s *Server) handleTotaisItens(c *gin.Context) {
	var req types.TotaisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe a lista de itens")
		return
	}

	total := tributacao.TotalizarItens(req.Itens)
	s.responderTotais(c, total)
}

func (s *Server) responderTotais(c *gin.Context, total decimal.Decimal) {
	porExtenso, err := extenso.ValorPorExtenso(total)
	if err != nil {
		s.responderErroInterno(c, "falha ao escrever o total por extenso", err)
		return
	}
	c.JSON(http.StatusOK, types.TotaisResponse{
		Total:        total.StringFixed(4),
		TotalExtenso: porExtenso,
		Exibicao:     moeda.FormatarExibicao(moeda.Nulo(total)),
	})
}

func (s *Server) responderErro(c *gin.Context, status int, mensagem string) {
	c.JSON(status, types.ErroResponse{
		Erro:      mensagem,
		RequestID: middleware.RequestIDDe(c),
	})
}

func (s *Server) responderErroInterno(c *gin.Context, mensagem string, err error) {
	s.logger.Error(mensagem, "erro", err, "request_id", middleware.RequestIDDe(c))
	s.responderErro(c, http.StatusInternalServerError, mensagem)
}
