package tributacao

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CasasDecimais é a precisão do arredondamento de preços unitários e totais.
const CasasDecimais = 4

// marcadorCAP é o segmento canônico do bloco de anotações da descrição.
const marcadorCAP = "CAP: SIM"

// separadorAnotacao separa os segmentos do bloco de anotações no fim da
// descrição ("DIPIRONA 500MG | CONFAZ 87/02 | CAP: SIM").
const separadorAnotacao = " | "

// ItemPreco é o estado de preço de um item da proposta. Exatamente um dos
// unitários é o valor digitado pelo usuário em cada passada de recálculo; o
// outro é derivado pelo fator de ICMS.
type ItemPreco struct {
	Quantidade      decimal.Decimal     `json:"quantidade"`
	UnitarioComICMS decimal.NullDecimal `json:"unitario_com_icms"`
	UnitarioSemICMS decimal.NullDecimal `json:"unitario_sem_icms"`
	TotalComICMS    decimal.NullDecimal `json:"total_com_icms"`
	TotalSemICMS    decimal.NullDecimal `json:"total_sem_icms"`
	Convenio        Convenio            `json:"convenio"`
	CAP             bool                `json:"cap"`
}

// Recalcular aplica as regras de convênio e o fator de ICMS da UF sobre o
// item e devolve o novo estado. Chamado a cada edição de quantidade, preço,
// descrição ou marca.
//
// Regras:
//   - Convênios 162/94, 140/01 e 10/02: o preço informado já exclui o ICMS.
//     Se só o unitário com ICMS estiver preenchido, ele migra para o campo
//     sem ICMS e o com ICMS é limpo.
//   - CONFAZ 87/02 ou sem convênio: com o unitário sem ICMS preenchido e
//     positivo, deriva-se o com ICMS dividindo pelo fator da UF.
//   - Totais sempre acompanham unitário x quantidade, lado a lado; unitário
//     ausente propaga total ausente (nunca zero).
func Recalcular(item ItemPreco, descricao, marca, uf string) ItemPreco {
	item.Convenio = IdentificarConvenio(descricao)

	com := item.UnitarioComICMS
	sem := item.UnitarioSemICMS

	switch {
	case item.Convenio.PrecoJaSemICMS() && com.Valid && com.Decimal.IsPositive() &&
		(!sem.Valid || !sem.Decimal.IsPositive()):
		// O valor digitado já é o isento: muda de lado.
		item.UnitarioSemICMS = com
		item.UnitarioComICMS = decimal.NullDecimal{}

	case !item.Convenio.PrecoJaSemICMS() && sem.Valid && sem.Decimal.IsPositive():
		fator := FatorICMS(uf, marca)
		derivado := sem.Decimal.DivRound(fator, CasasDecimais+4).Round(CasasDecimais)
		item.UnitarioComICMS = decimal.NullDecimal{Decimal: derivado, Valid: true}
	}

	item.TotalComICMS = totalDe(item.UnitarioComICMS, item.Quantidade)
	item.TotalSemICMS = totalDe(item.UnitarioSemICMS, item.Quantidade)
	return item
}

func totalDe(unitario decimal.NullDecimal, quantidade decimal.Decimal) decimal.NullDecimal {
	if !unitario.Valid {
		return decimal.NullDecimal{}
	}
	total := unitario.Decimal.Mul(quantidade).Round(CasasDecimais)
	return decimal.NullDecimal{Decimal: total, Valid: true}
}

// TotalizarItens soma o total de cada item usando o lado sem ICMS quando
// presente e positivo, senão o lado com ICMS. Um item nunca contribui com os
// dois lados, para não contar duas vezes.
func TotalizarItens(itens []ItemPreco) decimal.Decimal {
	total := decimal.Zero
	for _, item := range itens {
		switch {
		case item.TotalSemICMS.Valid && item.TotalSemICMS.Decimal.IsPositive():
			total = total.Add(item.TotalSemICMS.Decimal)
		case item.TotalComICMS.Valid:
			total = total.Add(item.TotalComICMS.Decimal)
		}
	}
	return total
}

// AplicarMarcadorCAP acrescenta ou remove o marcador "CAP: SIM" do bloco de
// anotações no fim da descrição, sem duplicar o marcador nem mexer nos demais
// segmentos. A operação é idempotente.
func AplicarMarcadorCAP(descricao string, cap bool) string {
	segmentos := strings.Split(descricao, separadorAnotacao)

	mantidos := segmentos[:0]
	for _, seg := range segmentos {
		if strings.EqualFold(strings.TrimSpace(seg), marcadorCAP) {
			continue
		}
		mantidos = append(mantidos, seg)
	}

	resultado := strings.Join(mantidos, separadorAnotacao)
	if cap {
		if resultado == "" {
			return marcadorCAP
		}
		resultado += separadorAnotacao + marcadorCAP
	}
	return resultado
}
