package proposta

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propostaserver/resolucao"
	"propostaserver/tributacao"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nulo(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestNovaGeraIdentificador(t *testing.T) {
	a, b := Nova(), Nova()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestItemResolverFabricante(t *testing.T) {
	item := Item{Numero: 1}
	item.ResolverFabricante("INSULINA EURO", []string{"EUROFARMA"}, map[string]string{"EURO": "EUROFARMA"})
	assert.Equal(t, "INSULINA", item.Descricao)
	assert.Equal(t, "EUROFARMA", item.Fabricante)
}

func TestRecalcularItensUsaUFDoOrgao(t *testing.T) {
	p := Nova()
	p.Orgao = &resolucao.Orgao{Nome: "PREFEITURA MUNICIPAL DE VILA VELHA / ES", UF: "ES"}
	p.Itens = []Item{{
		Numero:    1,
		Descricao: "DIPIRONA 500MG",
		Preco: tributacao.ItemPreco{
			Quantidade:      dec("10"),
			UnitarioSemICMS: nulo("8.3000"),
		},
	}}

	p.RecalcularItens()

	preco := p.Itens[0].Preco
	require.True(t, preco.UnitarioComICMS.Valid)
	// 8.30 / 0.83 (ES) = 10.0000
	assert.Equal(t, "10.0000", preco.UnitarioComICMS.Decimal.StringFixed(4))
	assert.Equal(t, "100.0000", preco.TotalComICMS.Decimal.StringFixed(4))
}

func TestTotalPreferindoSemICMS(t *testing.T) {
	p := Nova()
	p.Itens = []Item{
		{Preco: tributacao.ItemPreco{TotalComICMS: nulo("120"), TotalSemICMS: nulo("100")}},
		{Preco: tributacao.ItemPreco{TotalComICMS: nulo("50")}},
	}
	assert.Equal(t, "150.00", p.Total().StringFixed(2))
}

func TestTotalPorExtenso(t *testing.T) {
	p := Nova()
	p.Itens = []Item{{Preco: tributacao.ItemPreco{TotalSemICMS: nulo("2.50")}}}
	texto, err := p.TotalPorExtenso()
	require.NoError(t, err)
	assert.Equal(t, "dois reais e cinquenta centavos", texto)
}

func TestItemMarcarCAP(t *testing.T) {
	item := Item{Descricao: "DIPIRONA 500MG"}
	item.MarcarCAP(true)
	assert.Equal(t, "DIPIRONA 500MG | CAP: SIM", item.Descricao)
	assert.True(t, item.Preco.CAP)

	// Idempotente e reversível.
	item.MarcarCAP(true)
	assert.Equal(t, "DIPIRONA 500MG | CAP: SIM", item.Descricao)
	item.MarcarCAP(false)
	assert.Equal(t, "DIPIRONA 500MG", item.Descricao)
	assert.False(t, item.Preco.CAP)
}

func TestFormatarPrazoPorExtenso(t *testing.T) {
	texto, err := FormatarPrazoPorExtenso("60")
	require.NoError(t, err)
	assert.Equal(t, "60 (sessenta) dias", texto)

	texto, err = FormatarPrazoPorExtenso(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, "1 (um) dia", texto)

	// Entrada não numérica vira aviso; o campo fica vazio.
	_, err = FormatarPrazoPorExtenso("sessenta")
	assert.ErrorIs(t, err, ErrPrazoInvalido)

	_, err = FormatarPrazoPorExtenso("-5")
	assert.ErrorIs(t, err, ErrPrazoInvalido)
}

func TestInterpretarPercentual(t *testing.T) {
	v, err := InterpretarPercentual("12,5")
	require.NoError(t, err)
	assert.Equal(t, "12.5", v.String())

	_, err = InterpretarPercentual("101")
	assert.ErrorIs(t, err, ErrPercentualForaDoIntervalo)

	_, err = InterpretarPercentual("-1")
	assert.ErrorIs(t, err, ErrPercentualForaDoIntervalo)

	_, err = InterpretarPercentual("abc")
	assert.ErrorIs(t, err, ErrPercentualForaDoIntervalo)
}

func TestFormatarFracao(t *testing.T) {
	texto, err := FormatarFracao(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "1/2", texto)

	_, err = FormatarFracao(1, 0)
	assert.ErrorIs(t, err, ErrFracaoInvalida)

	_, err = FormatarFracao(1, -3)
	assert.ErrorIs(t, err, ErrFracaoInvalida)
}
