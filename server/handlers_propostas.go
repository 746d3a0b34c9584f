package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"propostaserver/proposta"
	"propostaserver/server/types"
)

// handleTotaisProposta recalcula os itens com a UF do órgão da proposta e
// devolve o total agregado.
func (s *Server) handleTotaisProposta(c *gin.Context) {
	var req types.PropostaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe a proposta")
		return
	}

	p := req.Proposta
	p.RecalcularItens()
	s.responderTotais(c, p.Total())
}

// handleExportarProposta exporta a proposta no formato pedido pelo parâmetro
// formato (json, csv ou excel).
func (s *Server) handleExportarProposta(c *gin.Context) {
	var req types.PropostaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.responderErro(c, http.StatusBadRequest, "corpo inválido: informe a proposta")
		return
	}

	p := req.Proposta
	p.RecalcularItens()

	nome := "proposta"
	if p.Edital != "" {
		nome = "proposta-" + p.Edital
	}

	formato := proposta.Formato(c.DefaultQuery("formato", string(proposta.FormatoJSON)))
	switch formato {
	case proposta.FormatoJSON:
		c.Header("Content-Type", "application/json")
		if err := proposta.ExportarJSON(&p, c.Writer); err != nil {
			s.responderErroInterno(c, "falha ao exportar proposta", err)
		}
	case proposta.FormatoCSV:
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", nome))
		if err := proposta.ExportarCSV(&p, c.Writer); err != nil {
			s.responderErroInterno(c, "falha ao exportar proposta", err)
		}
	case proposta.FormatoExcel:
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", nome))
		if err := proposta.ExportarExcel(&p, c.Writer); err != nil {
			s.responderErroInterno(c, "falha ao exportar proposta", err)
		}
	default:
		s.responderErro(c, http.StatusBadRequest, "formato desconhecido: "+string(formato))
	}
}
