package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"propostaserver/datas"
	"propostaserver/extenso"
	"propostaserver/moeda"
	"propostaserver/server/types"
)

// handleAtalhoData interpreta os atalhos digitados nos campos de data
// ("H", "A", "T3", "H0900").
func (s *Server) handleAtalhoData(c *gin.Context) {
	var req types.AtalhoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe o campo texto")
		return
	}
	c.JSON(http.StatusOK, types.AtalhoResponse{
		Resultado: datas.InterpretarAtalho(req.Texto, time.Now()),
	})
}

// handleMascaraMoeda sanitiza um valor monetário digitado e devolve as
// formatações de edição e exibição.
func (s *Server) handleMascaraMoeda(c *gin.Context) {
	var req types.MascaraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe o campo texto")
		return
	}

	sanitizado := moeda.SanitizarMascara(req.Texto)
	valor := moeda.ValorDaMascara(sanitizado)
	c.JSON(http.StatusOK, types.MascaraResponse{
		Sanitizado: sanitizado,
		Valor:      valor.StringFixed(moeda.CasasDecimais),
		Edicao:     moeda.FormatarEdicao(moeda.Nulo(valor)),
		Exibicao:   moeda.FormatarExibicao(moeda.Nulo(valor)),
	})
}

// handleNumeroPorExtenso escreve um número inteiro por extenso.
func (s *Server) handleNumeroPorExtenso(c *gin.Context) {
	numero, err := strconv.ParseInt(c.Param("numero"), 10, 64)
	if err != nil {
		s.responderErro(c, http.StatusBadRequest, "número inválido: "+c.Param("numero"))
		return
	}

	texto, err := extenso.PorExtenso(numero)
	if err != nil {
		s.responderErro(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	c.JSON(http.StatusOK, types.ExtensoResponse{
		Valor:   strconv.FormatInt(numero, 10),
		Extenso: texto,
	})
}

// handleValorPorExtenso escreve um valor monetário por extenso, recebendo a
// máscara como digitada.
func (s *Server) handleValorPorExtenso(c *gin.Context) {
	var req types.MascaraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe o campo texto")
		return
	}

	valor := moeda.ValorDaMascara(moeda.SanitizarMascara(req.Texto))
	texto, err := extenso.ValorPorExtenso(valor)
	if err != nil {
		s.responderErro(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	c.JSON(http.StatusOK, types.ExtensoResponse{
		Valor:   valor.StringFixed(moeda.CasasDecimais),
		Extenso: texto,
	})
}
