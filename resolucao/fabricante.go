// Package resolucao resolve o texto livre digitado pelo usuário contra os
// catálogos de referência: fabricante dentro da linha de produto, órgão
// licitante com tolerância a abreviações e produto por código ou texto.
package resolucao

import (
	"sort"
	"strings"

	"propostaserver/normalizacao"
)

// FabricanteNaoIdentificado é a sentinela devolvida quando nenhum fabricante
// conhecido aparece na linha digitada.
const FabricanteNaoIdentificado = "NÃO IDENTIFICADO"

// ProdutoResolvido é o resultado da separação produto/fabricante de uma linha
// digitada. Fabricante é sempre um nome da lista de referência ou a sentinela
// FabricanteNaoIdentificado; Produto nunca contém o trecho casado.
type ProdutoResolvido struct {
	Produto    string `json:"produto"`
	Fabricante string `json:"fabricante"`
}

// ResolverLinhaProduto separa a linha digitada em produto e fabricante.
//
// A linha é posta em maiúsculas e tem as abreviações expandidas. Um " - "
// literal divide explicitamente produto e fabricante (o delimitador do
// usuário prevalece). Sem delimitador, a lista de fabricantes é percorrida do
// nome mais longo para o mais curto — para "EMS" não casar dentro de um nome
// maior — e o primeiro nome contido no texto vence; empate de comprimento é
// decidido pela ordem estável da lista de referência.
func ResolverLinhaProduto(linha string, fabricantes []string, abreviacoes map[string]string) ProdutoResolvido {
	texto := strings.ToUpper(strings.TrimSpace(linha))
	if texto == "" {
		return ProdutoResolvido{}
	}

	texto = normalizacao.ExpandirAbreviacoes(texto, abreviacoes)

	if antes, depois, achou := strings.Cut(texto, " - "); achou {
		fabricante := strings.TrimSpace(depois)
		if fabricante == "" {
			fabricante = FabricanteNaoIdentificado
		}
		return ProdutoResolvido{
			Produto:    limparProduto(antes),
			Fabricante: fabricante,
		}
	}

	ordenados := make([]string, len(fabricantes))
	copy(ordenados, fabricantes)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return len(ordenados[i]) > len(ordenados[j])
	})

	for _, nome := range ordenados {
		nome = strings.ToUpper(strings.TrimSpace(nome))
		if nome == "" {
			continue
		}
		if strings.Contains(texto, nome) {
			restante := strings.Replace(texto, nome, "", 1)
			return ProdutoResolvido{
				Produto:    limparProduto(restante),
				Fabricante: nome,
			}
		}
	}

	return ProdutoResolvido{
		Produto:    limparProduto(texto),
		Fabricante: FabricanteNaoIdentificado,
	}
}

// limparProduto colapsa os espaços deixados pela remoção do fabricante e
// apara hífens soltos na ponta.
func limparProduto(texto string) string {
	texto = strings.Join(strings.Fields(texto), " ")
	texto = strings.TrimRight(texto, "- ")
	return strings.TrimSpace(texto)
}
