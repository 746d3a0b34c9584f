package extenso

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPorExtenso(t *testing.T) {
	casos := []struct {
		numero   int64
		esperado string
	}{
		{0, "zero"},
		{1, "um"},
		{15, "quinze"},
		{20, "vinte"},
		{21, "vinte e um"},
		{99, "noventa e nove"},
		{100, "cem"},
		{101, "cento e um"},
		{115, "cento e quinze"},
		{199, "cento e noventa e nove"},
		{200, "duzentos"},
		{345, "trezentos e quarenta e cinco"},
		{1000, "mil"},
		{1001, "mil e um"},
		{1100, "mil e cem"},
		{2345, "dois mil, trezentos e quarenta e cinco"},
		{60_000, "sessenta mil"},
		{100_000, "cem mil"},
		{999_999, "novecentos e noventa e nove mil, novecentos e noventa e nove"},
		{1_000_000, "um milhão"},
		{1_000_001, "um milhão e um"},
		{1_000_100, "um milhão e cem"},
		{2_500_000, "dois milhões e quinhentos mil"},
		{2_530_417, "dois milhões, quinhentos e trinta mil, quatrocentos e dezessete"},
		{999_999_999, "novecentos e noventa e nove milhões, novecentos e noventa e nove mil, novecentos e noventa e nove"},
	}

	for _, c := range casos {
		texto, err := PorExtenso(c.numero)
		require.NoError(t, err, "numero %d", c.numero)
		assert.Equal(t, c.esperado, texto, "numero %d", c.numero)
	}
}

func TestPorExtensoForaDoIntervalo(t *testing.T) {
	_, err := PorExtenso(-1)
	assert.ErrorIs(t, err, ErrForaDoIntervalo)

	_, err = PorExtenso(1_000_000_000)
	assert.ErrorIs(t, err, ErrForaDoIntervalo)
}

func TestValorPorExtenso(t *testing.T) {
	casos := []struct {
		valor    string
		esperado string
	}{
		{"0", "zero reais"},
		{"1", "um real"},
		{"2", "dois reais"},
		{"2.50", "dois reais e cinquenta centavos"},
		{"0.01", "um centavo"},
		{"0.75", "setenta e cinco centavos"},
		{"1.01", "um real e um centavo"},
		{"1234.56", "mil, duzentos e trinta e quatro reais e cinquenta e seis centavos"},
		{"1000000", "um milhão de reais"},
		{"2000000", "dois milhões de reais"},
		{"1000000.10", "um milhão de reais e dez centavos"},
	}

	for _, c := range casos {
		valor := decimal.RequireFromString(c.valor)
		texto, err := ValorPorExtenso(valor)
		require.NoError(t, err, "valor %s", c.valor)
		assert.Equal(t, c.esperado, texto, "valor %s", c.valor)
	}
}

func TestValorPorExtensoArredondaCentavos(t *testing.T) {
	// Valores com quatro casas são arredondados para duas antes da escrita.
	texto, err := ValorPorExtenso(decimal.RequireFromString("2.4950"))
	require.NoError(t, err)
	assert.Equal(t, "dois reais e cinquenta centavos", texto)
}

func TestValorPorExtensoNegativo(t *testing.T) {
	_, err := ValorPorExtenso(decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrValorNegativo)
}
