package resolucao

import (
	"strings"

	"propostaserver/normalizacao"
)

// Produto é um item do catálogo de produtos da distribuidora.
type Produto struct {
	Codigo       string `json:"codigo"`
	Nome         string `json:"nome"`
	Apresentacao string `json:"apresentacao,omitempty"`
}

// BuscarProdutoPorCodigo procura o produto pelo código, por igualdade exata e
// na ordem do catálogo.
func BuscarProdutoPorCodigo(codigo string, catalogo []Produto) *Produto {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil
	}
	for i := range catalogo {
		if catalogo[i].Codigo == codigo {
			return &catalogo[i]
		}
	}
	return nil
}

// BuscarProdutosPorTexto devolve os produtos cujo nome normalizado contém
// todos os tokens da busca como substring, na ordem do catálogo. Busca vazia
// devolve nil.
func BuscarProdutosPorTexto(texto string, catalogo []Produto) []Produto {
	tokens := normalizacao.NormalizarBusca(texto)
	if len(tokens) == 0 {
		return nil
	}

	var achados []Produto
	for _, p := range catalogo {
		nome := normalizacao.TextoBusca(p.Nome + " " + p.Apresentacao)
		todos := true
		for _, token := range tokens {
			if !strings.Contains(nome, token) {
				todos = false
				break
			}
		}
		if todos {
			achados = append(achados, p)
		}
	}
	return achados
}
