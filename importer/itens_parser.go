package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"propostaserver/moeda"
	"propostaserver/proposta"
	"propostaserver/tributacao"
)

// ParseItensExcel lê a planilha de itens de um edital para dentro da
// proposta. Colunas: ITEM e DESCRIÇÃO obrigatórias; MARCA, UNIDADE,
// QUANTIDADE e VALOR UNITÁRIO opcionais. Valores monetários aceitam vírgula
// decimal e passam pela máscara de moeda.
func ParseItensExcel(caminho string) ([]proposta.Item, error) {
	linhas, err := lerLinhas(caminho)
	if err != nil {
		return nil, err
	}

	inicio, mapa, err := localizarCabecalho(linhas,
		[]string{"ITEM", "DESCRIÇÃO"},
		[]string{"MARCA", "UNIDADE", "QUANTIDADE", "VALOR UNITÁRIO"})
	if err != nil {
		return nil, fmt.Errorf("planilha de itens: %w", err)
	}

	var itens []proposta.Item
	for n, linha := range linhas[inicio+1:] {
		descricao := strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "DESCRIÇÃO")))
		if descricao == "" {
			continue
		}

		numero := len(itens) + 1
		if texto := strings.TrimSpace(celula(linha, mapa, "ITEM")); texto != "" {
			if _, err := fmt.Sscanf(texto, "%d", &numero); err != nil {
				return nil, fmt.Errorf("planilha de itens: número inválido %q na linha %d", texto, inicio+n+2)
			}
		}

		quantidade := decimal.Zero
		if texto := strings.TrimSpace(celula(linha, mapa, "QUANTIDADE")); texto != "" {
			quantidade = moeda.ValorDaMascara(moeda.SanitizarMascara(texto))
		}

		preco := tributacao.ItemPreco{Quantidade: quantidade}
		if texto := strings.TrimSpace(celula(linha, mapa, "VALOR UNITÁRIO")); texto != "" {
			valor := moeda.ValorDaMascara(moeda.SanitizarMascara(texto))
			if valor.IsPositive() {
				preco.UnitarioComICMS = moeda.Nulo(valor)
			}
		}

		itens = append(itens, proposta.Item{
			Numero:    numero,
			Descricao: descricao,
			Marca:     strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "MARCA"))),
			Unidade:   strings.ToUpper(strings.TrimSpace(celula(linha, mapa, "UNIDADE"))),
			Preco:     preco,
		})
	}

	if len(itens) == 0 {
		return nil, fmt.Errorf("planilha de itens sem registros")
	}
	return itens, nil
}
