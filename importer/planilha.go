// Package importer lê as planilhas de carga dos catálogos de referência
// (órgãos, produtos, fabricantes) e de itens de edital. Os cabeçalhos são
// localizados por nome de coluna, tolerando variações de acento e ordem.
package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"propostaserver/normalizacao"
)

// linhasDeBusca é quantas linhas iniciais são varridas atrás do cabeçalho.
const linhasDeBusca = 10

// lerLinhas abre a primeira aba da planilha e devolve todas as linhas.
func lerLinhas(caminho string) ([][]string, error) {
	f, err := excelize.OpenFile(caminho)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir planilha: %w", err)
	}
	defer f.Close()

	aba := f.GetSheetName(0)
	if aba == "" {
		return nil, fmt.Errorf("planilha sem abas")
	}

	linhas, err := f.GetRows(aba)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}
	return linhas, nil
}

// localizarCabecalho procura nas primeiras linhas aquela que contém todas as
// colunas obrigatórias e devolve o índice da linha e o mapa coluna -> posição.
// A comparação ignora acentos e maiúsculas.
func localizarCabecalho(linhas [][]string, obrigatorias []string, opcionais []string) (int, map[string]int, error) {
	limite := linhasDeBusca
	if len(linhas) < limite {
		limite = len(linhas)
	}

	for i := 0; i < limite; i++ {
		posicoes := make(map[string]int)
		for col, celula := range linhas[i] {
			chave := normalizacao.TextoBusca(celula)
			if chave == "" {
				continue
			}
			if _, repetida := posicoes[chave]; !repetida {
				posicoes[chave] = col
			}
		}

		completo := true
		for _, coluna := range obrigatorias {
			if _, ok := posicoes[normalizacao.TextoBusca(coluna)]; !ok {
				completo = false
				break
			}
		}
		if !completo {
			continue
		}

		mapa := make(map[string]int)
		for _, coluna := range append(append([]string{}, obrigatorias...), opcionais...) {
			if pos, ok := posicoes[normalizacao.TextoBusca(coluna)]; ok {
				mapa[coluna] = pos
			}
		}
		return i, mapa, nil
	}
	return 0, nil, fmt.Errorf("cabeçalho não encontrado nas primeiras %d linhas (esperado: %v)", limite, obrigatorias)
}

// celula devolve o valor da coluna na linha, tolerando linhas curtas.
func celula(linha []string, mapa map[string]int, coluna string) string {
	pos, ok := mapa[coluna]
	if !ok || pos >= len(linha) {
		return ""
	}
	return linha[pos]
}
