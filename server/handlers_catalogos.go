package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"propostaserver/resolucao"
	"propostaserver/server/types"
)

func (s *Server) handleListarOrgaos(c *gin.Context) {
	orgaos, err := s.db.ListarOrgaos()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar órgãos", err)
		return
	}
	c.JSON(http.StatusOK, orgaos)
}

func (s *Server) handleInserirOrgao(c *gin.Context) {
	var orgao resolucao.Orgao
	if err := c.ShouldBindJSON(&orgao); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe o órgão")
		return
	}
	if strings.TrimSpace(orgao.Nome) == "" {
		s.responderErro(c, http.StatusBadRequest, "órgão sem nome")
		return
	}
	if err := s.db.InserirOrgao(orgao); err != nil {
		s.responderErro(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	c.JSON(http.StatusCreated, orgao)
}

// handleBuscarOrgao resolve o texto livre digitado no campo de órgão contra o
// catálogo.
func (s *Server) handleBuscarOrgao(c *gin.Context) {
	texto := c.Query("texto")
	if strings.TrimSpace(texto) == "" {
		s.responderErro(c, http.StatusBadRequest, "informe o parâmetro texto")
		return
	}

	catalogo, err := s.db.ListarOrgaos()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar órgãos", err)
		return
	}

	resultado := resolucao.ResolverOrgao(texto, catalogo)
	c.JSON(http.StatusOK, types.OrgaoResponse{Orgao: resultado.Orgao, Texto: resultado.Texto})
}

func (s *Server) handleOrgaoPorUASG(c *gin.Context) {
	catalogo, err := s.db.ListarOrgaos()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar órgãos", err)
		return
	}

	orgao := resolucao.ResolverOrgaoPorUASG(c.Param("codigo"), catalogo)
	if orgao == nil {
		s.responderErro(c, http.StatusNotFound, "nenhum órgão com essa UASG")
		return
	}
	c.JSON(http.StatusOK, orgao)
}

func (s *Server) handleListarProdutos(c *gin.Context) {
	produtos, err := s.db.ListarProdutos()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar produtos", err)
		return
	}
	c.JSON(http.StatusOK, produtos)
}

func (s *Server) handleInserirProduto(c *gin.Context) {
	var produto resolucao.Produto
	if err := c.ShouldBindJSON(&produto); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe o produto")
		return
	}
	if strings.TrimSpace(produto.Codigo) == "" || strings.TrimSpace(produto.Nome) == "" {
		s.responderErro(c, http.StatusBadRequest, "produto exige código e nome")
		return
	}
	if err := s.db.InserirProduto(produto); err != nil {
		s.responderErroInterno(c, "falha ao gravar produto", err)
		return
	}
	c.JSON(http.StatusCreated, produto)
}

func (s *Server) handleBuscarProdutos(c *gin.Context) {
	texto := c.Query("texto")
	if strings.TrimSpace(texto) == "" {
		s.responderErro(c, http.StatusBadRequest, "informe o parâmetro texto")
		return
	}

	catalogo, err := s.db.ListarProdutos()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar produtos", err)
		return
	}
	c.JSON(http.StatusOK, resolucao.BuscarProdutosPorTexto(texto, catalogo))
}

func (s *Server) handleProdutoPorCodigo(c *gin.Context) {
	catalogo, err := s.db.ListarProdutos()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar produtos", err)
		return
	}

	produto := resolucao.BuscarProdutoPorCodigo(c.Param("codigo"), catalogo)
	if produto == nil {
		s.responderErro(c, http.StatusNotFound, "nenhum produto com esse código")
		return
	}
	c.JSON(http.StatusOK, produto)
}

func (s *Server) handleListarFabricantes(c *gin.Context) {
	fabricantes, err := s.db.ListarFabricantes()
	if err != nil {
		s.responderErroInterno(c, "falha ao listar fabricantes", err)
		return
	}
	c.JSON(http.StatusOK, fabricantes)
}

func (s *Server) handleInserirFabricante(c *gin.Context) {
	var req struct {
		Nome  string `json:"nome" binding:"required"`
		Sigla string `json:"sigla"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe o nome")
		return
	}

	if err := s.db.InserirFabricante(req.Nome); err != nil {
		s.responderErroInterno(c, "falha ao gravar fabricante", err)
		return
	}
	if strings.TrimSpace(req.Sigla) != "" {
		if err := s.db.InserirAbreviacao(req.Sigla, req.Nome); err != nil {
			s.responderErroInterno(c, "falha ao gravar abreviação", err)
			return
		}
	}
	c.JSON(http.StatusCreated, gin.H{"nome": req.Nome, "sigla": req.Sigla})
}
