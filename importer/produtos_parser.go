package importer

import (
	"fmt"
	"strings"

	"propostaserver/resolucao"
)

// ParseProdutosExcel lê a planilha do catálogo de produtos. Colunas: CÓDIGO e
// PRODUTO obrigatórias, APRESENTAÇÃO opcional.
func ParseProdutosExcel(caminho string) ([]resolucao.Produto, error) {
	linhas, err := lerLinhas(caminho)
	if err != nil {
		return nil, err
	}

	inicio, mapa, err := localizarCabecalho(linhas, []string{"CÓDIGO", "PRODUTO"}, []string{"APRESENTAÇÃO"})
	if err != nil {
		return nil, fmt.Errorf("planilha de produtos: %w", err)
	}

	var produtos []resolucao.Produto
	for _, linha := range linhas[inicio+1:] {
		codigo := strings.TrimSpace(celula(linha, mapa, "CÓDIGO"))
		nome := strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "PRODUTO")))
		if codigo == "" && nome == "" {
			continue
		}
		if codigo == "" || nome == "" {
			return nil, fmt.Errorf("planilha de produtos: linha com código ou produto vazio (código %q, produto %q)", codigo, nome)
		}
		produtos = append(produtos, resolucao.Produto{
			Codigo:       codigo,
			Nome:         nome,
			Apresentacao: strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "APRESENTAÇÃO"))),
		})
	}

	if len(produtos) == 0 {
		return nil, fmt.Errorf("planilha de produtos sem registros")
	}
	return produtos, nil
}
