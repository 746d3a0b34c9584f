// Package extenso converte números e valores monetários para o texto por
// extenso em português, usado nos campos de validade, prazo e valor total das
// propostas.
package extenso

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaximoSuportado é o maior inteiro aceito pelo conversor.
const MaximoSuportado = 999_999_999

var (
	// ErrForaDoIntervalo indica número fora de 0..999.999.999.
	ErrForaDoIntervalo = errors.New("numero fora do intervalo suportado")
	// ErrValorNegativo indica valor monetário negativo para escrita por extenso.
	ErrValorNegativo = errors.New("valor monetario negativo")
)

var unidades = [20]string{
	"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis",
	"dezessete", "dezoito", "dezenove",
}

var dezenas = [10]string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta",
	"oitenta", "noventa",
}

var centenas = [10]string{
	"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
	"seiscentos", "setecentos", "oitocentos", "novecentos",
}

// grupo escreve um número de 0 a 999. O caso especial "cem" só vale para 100
// exato; de 101 a 199 usa-se "cento e".
func grupo(n int64) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "cem"
	}

	partes := make([]string, 0, 3)
	if c := n / 100; c > 0 {
		partes = append(partes, centenas[c])
	}
	resto := n % 100
	switch {
	case resto == 0:
	case resto < 20:
		partes = append(partes, unidades[resto])
	default:
		dezena := dezenas[resto/10]
		if u := resto % 10; u > 0 {
			dezena += " e " + unidades[u]
		}
		partes = append(partes, dezena)
	}
	return strings.Join(partes, " e ")
}

// PorExtenso converte um inteiro de 0 a 999.999.999 para o texto por extenso.
// A conjunção "e" entra antes do último grupo quando ele é menor que cem ou
// múltiplo exato de cem ("mil e um", "um milhão e cem"); caso contrário os
// grupos são separados por vírgula ("dois mil, trezentos e quarenta e cinco").
func PorExtenso(n int64) (string, error) {
	if n < 0 || n > MaximoSuportado {
		return "", ErrForaDoIntervalo
	}
	if n == 0 {
		return "zero", nil
	}

	milhoes := n / 1_000_000
	milhares := (n / 1000) % 1000
	resto := n % 1000

	type parte struct {
		texto string
		valor int64
	}
	partes := make([]parte, 0, 3)

	if milhoes == 1 {
		partes = append(partes, parte{"um milhão", milhoes})
	} else if milhoes > 1 {
		partes = append(partes, parte{grupo(milhoes) + " milhões", milhoes})
	}

	if milhares == 1 {
		// "um mil" não se escreve; é só "mil".
		partes = append(partes, parte{"mil", milhares})
	} else if milhares > 1 {
		partes = append(partes, parte{grupo(milhares) + " mil", milhares})
	}

	if resto > 0 {
		partes = append(partes, parte{grupo(resto), resto})
	}

	texto := partes[0].texto
	for i := 1; i < len(partes); i++ {
		ultima := i == len(partes)-1
		if ultima && (partes[i].valor < 100 || partes[i].valor%100 == 0) {
			texto += " e " + partes[i].texto
		} else {
			texto += ", " + partes[i].texto
		}
	}
	return texto, nil
}

// ValorPorExtenso escreve um valor monetário por extenso em reais, com os
// centavos quando existirem ("dois reais e cinquenta centavos"). O valor é
// arredondado para duas casas antes da escrita. Milhões exatos levam o "de"
// partitivo: "um milhão de reais".
func ValorPorExtenso(valor decimal.Decimal) (string, error) {
	if valor.IsNegative() {
		return "", ErrValorNegativo
	}

	arredondado := valor.Round(2)
	reais := arredondado.IntPart()
	centavos := arredondado.Sub(decimal.NewFromInt(reais)).Mul(decimal.NewFromInt(100)).IntPart()

	if reais > MaximoSuportado {
		return "", ErrForaDoIntervalo
	}

	var partes []string
	switch {
	case reais == 1:
		partes = append(partes, "um real")
	case reais > 1:
		texto, err := PorExtenso(reais)
		if err != nil {
			return "", err
		}
		if reais%1_000_000 == 0 {
			partes = append(partes, texto+" de reais")
		} else {
			partes = append(partes, texto+" reais")
		}
	}

	switch {
	case centavos == 1:
		partes = append(partes, "um centavo")
	case centavos > 1:
		texto, err := PorExtenso(centavos)
		if err != nil {
			return "", err
		}
		partes = append(partes, texto+" centavos")
	}

	// Zero pluraliza: "zero reais", nunca "zero real".
	if len(partes) == 0 {
		return "zero reais", nil
	}
	return strings.Join(partes, " e "), nil
}
