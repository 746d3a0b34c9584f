// Package types define os corpos de requisição e resposta da API HTTP.
package types

import (
	"propostaserver/proposta"
	"propostaserver/resolucao"
	"propostaserver/tributacao"
)

// ResolverItemRequest pede a resolução de fabricante para uma linha de texto.
type ResolverItemRequest struct {
	Texto string `json:"texto" binding:"required"`
}

// ResolverItemResponse devolve o produto e o fabricante resolvidos.
type ResolverItemResponse struct {
	Produto    string `json:"produto"`
	Fabricante string `json:"fabricante"`
}

// RecalcularItemRequest pede o recálculo de preços de um item.
type RecalcularItemRequest struct {
	Descricao string               `json:"descricao"`
	Marca     string               `json:"marca"`
	UF        string               `json:"uf" binding:"required"`
	Preco     tributacao.ItemPreco `json:"preco"`
}

// RecalcularItemResponse devolve o item recalculado e o convênio aplicado.
type RecalcularItemResponse struct {
	Preco    tributacao.ItemPreco `json:"preco"`
	Convenio string               `json:"convenio"`
	Fator    string               `json:"fator"`
}

// TotaisRequest pede a totalização de uma lista de itens.
type TotaisRequest struct {
	Itens []tributacao.ItemPreco `json:"itens" binding:"required"`
}

// TotaisResponse devolve o total agregado em número, extenso e exibição.
type TotaisResponse struct {
	Total        string `json:"total"`
	TotalExtenso string `json:"total_extenso"`
	Exibicao     string `json:"exibicao"`
}

// OrgaoResponse devolve o resultado da resolução de órgão.
type OrgaoResponse struct {
	Orgao *resolucao.Orgao `json:"orgao,omitempty"`
	Texto string           `json:"texto"`
}

// AtalhoRequest pede a interpretação de um atalho de data.
type AtalhoRequest struct {
	Texto string `json:"texto" binding:"required"`
}

// AtalhoResponse devolve a data interpretada.
type AtalhoResponse struct {
	Resultado string `json:"resultado"`
}

// MascaraRequest carrega um valor monetário digitado pelo usuário.
type MascaraRequest struct {
	Texto string `json:"texto"`
}

// MascaraResponse devolve o valor sanitizado e suas formatações.
type MascaraResponse struct {
	Sanitizado string `json:"sanitizado"`
	Valor      string `json:"valor"`
	Edicao     string `json:"edicao"`
	Exibicao   string `json:"exibicao"`
}

// ExtensoResponse devolve um valor escrito por extenso.
type ExtensoResponse struct {
	Valor   string `json:"valor"`
	Extenso string `json:"extenso"`
}

// PropostaRequest carrega uma proposta completa para totalização ou exportação.
type PropostaRequest struct {
	Proposta proposta.Proposta `json:"proposta"`
}

// ImportacaoResponse resume uma importação de planilha.
type ImportacaoResponse struct {
	Importados int    `json:"importados"`
	Mensagem   string `json:"mensagem"`
}

// ErroResponse é o corpo padrão de erro da API.
type ErroResponse struct {
	Erro      string `json:"erro"`
	RequestID string `json:"request_id,omitempty"`
}
