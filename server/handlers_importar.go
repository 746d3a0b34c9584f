package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propostaserver/importer"
	"propostaserver/server/types"
)

// receberPlanilha grava o arquivo enviado em um caminho temporário e devolve
// o caminho. O chamador remove o arquivo ao terminar.
func (s *Server) receberPlanilha(c *gin.Context) (string, bool) {
	arquivo, err := c.FormFile("arquivo")
	if err != nil {
		s.responderErro(c, http.StatusBadRequest, "envie a planilha no campo arquivo")
		return "", false
	}

	destino := filepath.Join(os.TempDir(), fmt.Sprintf("importacao-%s.xlsx", uuid.New().String()))
	if err := c.SaveUploadedFile(arquivo, destino); err != nil {
		s.responderErroInterno(c, "falha ao receber a planilha", err)
		return "", false
	}
	return destino, true
}

func (s *Server) handleImportarOrgaos(c *gin.Context) {
	caminho, ok := s.receberPlanilha(c)
	if !ok {
		return
	}
	defer os.Remove(caminho)

	orgaos, err := importer.ParseOrgaosExcel(caminho)
	if err != nil {
		s.responderErro(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	importados := 0
	for _, orgao := range orgaos {
		if err := s.db.InserirOrgao(orgao); err != nil {
			s.responderErroInterno(c, "falha ao gravar órgão", err)
			return
		}
		importados++
	}
	c.JSON(http.StatusOK, types.ImportacaoResponse{
		Importados: importados,
		Mensagem:   fmt.Sprintf("%d órgãos importados", importados),
	})
}

func (s *Server) handleImportarFabricantes(c *gin.Context) {
	caminho, ok := s.receberPlanilha(c)
	if !ok {
		return
	}
	defer os.Remove(caminho)

	fabricantes, abreviacoes, err := importer.ParseFabricantesExcel(caminho)
	if err != nil {
		s.responderErro(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	for _, nome := range fabricantes {
		if err := s.db.InserirFabricante(nome); err != nil {
			s.responderErroInterno(c, "falha ao gravar fabricante", err)
			return
		}
	}
	for sigla, expansao := range abreviacoes {
		if err := s.db.InserirAbreviacao(sigla, expansao); err != nil {
			s.responderErroInterno(c, "falha ao gravar abreviação", err)
			return
		}
	}
	c.JSON(http.StatusOK, types.ImportacaoResponse{
		Importados: len(fabricantes),
		Mensagem:   fmt.Sprintf("%d fabricantes e %d abreviações importados", len(fabricantes), len(abreviacoes)),
	})
}

func (s *Server) handleImportarProdutos(c *gin.Context) {
	caminho, ok := s.receberPlanilha(c)
	if !ok {
		return
	}
	defer os.Remove(caminho)

	produtos, err := importer.ParseProdutosExcel(caminho)
	if err != nil {
		s.responderErro(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	importados := 0
	for _, produto := range produtos {
		if err := s.db.InserirProduto(produto); err != nil {
			s.responderErroInterno(c, "falha ao gravar produto", err)
			return
		}
		importados++
	}
	c.JSON(http.StatusOK, types.ImportacaoResponse{
		Importados: importados,
		Mensagem:   fmt.Sprintf("%d produtos importados", importados),
	})
}

// handleImportarItens lê os itens de um edital em planilha e devolve as
// linhas já resolvidas, sem gravar nada: os itens pertencem à proposta em
// edição, não ao catálogo.
func (s *Server) handleImportarItens(c *gin.Context) {
	caminho, ok := s.receberPlanilha(c)
	if !ok {
		return
	}
	defer os.Remove(caminho)

	itens, err := importer.ParseItensExcel(caminho)
	if err != nil {
		s.responderErro(c, http.StatusUnprocessableEntity, err.Error())
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

	for i := range itens {
		itens[i].ResolverFabricante(itens[i].Descricao, fabricantes, abreviacoes)
	}
	c.JSON(http.StatusOK, itens)
}
