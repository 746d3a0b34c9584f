package importer

import (
	"fmt"
	"strings"

	"propostaserver/resolucao"
)

// ParseOrgaosExcel lê a planilha de carga do catálogo de órgãos. Colunas
// esperadas: ÓRGÃO (obrigatória), UASG, PORTAL e UF (opcionais).
func ParseOrgaosExcel(caminho string) ([]resolucao.Orgao, error) {
	linhas, err := lerLinhas(caminho)
	if err != nil {
		return nil, err
	}

	inicio, mapa, err := localizarCabecalho(linhas, []string{"ÓRGÃO"}, []string{"UASG", "PORTAL", "UF"})
	if err != nil {
		return nil, fmt.Errorf("planilha de órgãos: %w", err)
	}

	var orgaos []resolucao.Orgao
	for _, linha := range linhas[inicio+1:] {
		nome := strings.TrimSpace(celula(linha, mapa, "ÓRGÃO"))
		if nome == "" {
			continue
		}
		uf := strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "UF")))
		if uf != "" && !resolucao.UFValida(uf) {
			return nil, fmt.Errorf("planilha de órgãos: UF inválida %q para %q", uf, nome)
		}
		orgaos = append(orgaos, resolucao.Orgao{
			Nome:   strings.ToUpper(nome),
			UASG:   strings.TrimSpace(celula(linha, mapa, "UASG")),
			Portal: strings.TrimSpace(celula(linha, mapa, "PORTAL")),
			UF:     uf,
		})
	}

	if len(orgaos) == 0 {
		return nil, fmt.Errorf("planilha de órgãos sem registros")
	}
	return orgaos, nil
}

// ParseFabricantesExcel lê a planilha de fabricantes: coluna FABRICANTE
// obrigatória e as opcionais SIGLA/EXPANSÃO para as abreviações.
func ParseFabricantesExcel(caminho string) (fabricantes []string, abreviacoes map[string]string, err error) {
	linhas, err := lerLinhas(caminho)
	if err != nil {
		return nil, nil, err
	}

	inicio, mapa, err := localizarCabecalho(linhas, []string{"FABRICANTE"}, []string{"SIGLA"})
	if err != nil {
		return nil, nil, fmt.Errorf("planilha de fabricantes: %w", err)
	}

	abreviacoes = make(map[string]string)
	for _, linha := range linhas[inicio+1:] {
		nome := strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "FABRICANTE")))
		if nome == "" {
			continue
		}
		fabricantes = append(fabricantes, nome)
		if sigla := strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "SIGLA"))); sigla != "" {
			abreviacoes[sigla] = nome
		}
	}

	if len(fabricantes) == 0 {
		return nil, nil, fmt.Errorf("planilha de fabricantes sem registros")
	}
	return fabricantes, abreviacoes, nil
}
