// Package moeda implementa a máscara de digitação monetária usada nos campos
// de preço da proposta: saneamento do texto digitado, conversão para valor
// numérico e formatação para edição e exibição no padrão brasileiro.
package moeda

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CasasDecimais é a precisão monetária dos preços unitários e totais.
const CasasDecimais = 4

// SanitizarMascara remove do texto digitado tudo que não for dígito ou
// vírgula, mantém apenas a primeira vírgula e corta a parte fracionária em
// quatro dígitos.
func SanitizarMascara(bruto string) string {
	var b strings.Builder
	temVirgula := false
	fracao := 0

	for _, r := range bruto {
		switch {
		case r >= '0' && r <= '9':
			if temVirgula {
				if fracao >= CasasDecimais {
					continue
				}
				fracao++
			}
			b.WriteRune(r)
		case r == ',' && !temVirgula:
			temVirgula = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValorDaMascara converte o texto mascarado (vírgula decimal) em valor
// numérico. Texto vazio ou não numérico vale zero.
func ValorDaMascara(mascara string) decimal.Decimal {
	mascara = strings.ReplaceAll(strings.TrimSpace(mascara), ",", ".")
	if mascara == "" || mascara == "." {
		return decimal.Zero
	}
	valor, err := decimal.NewFromString(mascara)
	if err != nil {
		return decimal.Zero
	}
	return valor
}

// FormatarEdicao devolve o valor no formato de edição: vírgula decimal,
// exatamente quatro casas e sem separador de milhar. Valor ausente ou zero
// vira string vazia para o usuário digitar do começo.
func FormatarEdicao(valor decimal.NullDecimal) string {
	if !valor.Valid || valor.Decimal.IsZero() {
		return ""
	}
	return strings.ReplaceAll(valor.Decimal.StringFixed(CasasDecimais), ".", ",")
}

// FormatarExibicao devolve o valor no formato completo de exibição: símbolo,
// separador de milhar e quatro casas decimais ("R$ 1.234,5678"). Valor
// ausente ou zero vira string vazia.
func FormatarExibicao(valor decimal.NullDecimal) string {
	if !valor.Valid || valor.Decimal.IsZero() {
		return ""
	}
	p := message.NewPrinter(language.BrazilianPortuguese)
	f, _ := valor.Decimal.Round(CasasDecimais).Float64()
	return "R$ " + p.Sprint(number.Decimal(f,
		number.MinFractionDigits(CasasDecimais),
		number.MaxFractionDigits(CasasDecimais)))
}

// Nulo embrulha um valor em decimal.NullDecimal válido.
func Nulo(valor decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: valor, Valid: true}
}

// Vazio é o decimal.NullDecimal ausente.
func Vazio() decimal.NullDecimal {
	return decimal.NullDecimal{}
}
