package moeda

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSanitizarMascara(t *testing.T) {
	casos := []struct {
		bruto    string
		esperado string
	}{
		{"", ""},
		{"12,34", "12,34"},
		{"R$ 1.234,56", "1234,56"},
		{"abc", ""},
		{"1,2,3", "1,23"},
		{"0,123456", "0,1234"},
		{"  10 , 99 ", "10,99"},
		{"12.34", "1234"},
		{",5", ",5"},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, SanitizarMascara(c.bruto), "entrada %q", c.bruto)
	}
}

func TestValorDaMascara(t *testing.T) {
	assert.True(t, decimal.RequireFromString("12.34").Equal(ValorDaMascara("12,34")))
	assert.True(t, decimal.RequireFromString("0.5").Equal(ValorDaMascara(",5")))
	assert.True(t, decimal.Zero.Equal(ValorDaMascara("")))
	assert.True(t, decimal.Zero.Equal(ValorDaMascara("abc")))
	assert.True(t, decimal.RequireFromString("1000").Equal(ValorDaMascara("1000")))
}

// Lei de ida e volta: para qualquer texto aceito pelo saneamento, o valor
// interpretado é estável sob novo saneamento.
func TestValorEstavelSobResaneamento(t *testing.T) {
	entradas := []string{"12,34", "0,1234", "1,2,3", "R$ 9.999,99", "", "000,1", "1234567"}
	for _, e := range entradas {
		mascara := SanitizarMascara(e)
		valor := ValorDaMascara(mascara)
		denovo := ValorDaMascara(SanitizarMascara(mascara))
		assert.True(t, valor.Equal(denovo), "entrada %q", e)
	}
}

func TestFormatarEdicao(t *testing.T) {
	assert.Equal(t, "12,3400", FormatarEdicao(Nulo(decimal.RequireFromString("12.34"))))
	assert.Equal(t, "0,1234", FormatarEdicao(Nulo(decimal.RequireFromString("0.1234"))))
	// Sem separador de milhar no modo de edição.
	assert.Equal(t, "1234567,0000", FormatarEdicao(Nulo(decimal.RequireFromString("1234567"))))
	// Zero e ausente viram vazio para o usuário digitar do começo.
	assert.Equal(t, "", FormatarEdicao(Nulo(decimal.Zero)))
	assert.Equal(t, "", FormatarEdicao(Vazio()))
}

func TestFormatarExibicao(t *testing.T) {
	assert.Equal(t, "R$ 1.234,5678", FormatarExibicao(Nulo(decimal.RequireFromString("1234.5678"))))
	assert.Equal(t, "R$ 10,0000", FormatarExibicao(Nulo(decimal.RequireFromString("10"))))
	assert.Equal(t, "", FormatarExibicao(Nulo(decimal.Zero)))
	assert.Equal(t, "", FormatarExibicao(Vazio()))
}
