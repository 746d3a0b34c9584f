package proposta

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"propostaserver/tributacao"
)

func propostaDeTeste() *Proposta {
	p := Nova()
	p.Itens = []Item{
		{
			Numero:     1,
			Descricao:  "DIPIRONA 500MG",
			Marca:      "GENERICO",
			Fabricante: "EUROFARMA",
			Unidade:    "CP",
			Preco: tributacao.ItemPreco{
				Quantidade:      dec("100"),
				UnitarioSemICMS: nulo("10.0000"),
				TotalSemICMS:    nulo("1000.0000"),
			},
		},
		{
			Numero:    2,
			Descricao: "AMOXICILINA 500MG",
			Preco: tributacao.ItemPreco{
				Quantidade:   dec("50"),
				TotalComICMS: nulo("250.0000"),
			},
		},
	}
	return p
}

func TestExportarJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportarJSON(propostaDeTeste(), &buf))

	var saida map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &saida))
	assert.Equal(t, "1250", saida["total"])
	assert.Contains(t, saida["total_extenso"], "mil")
	assert.NotEmpty(t, saida["exportado_em"])
}

func TestExportarCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportarCSV(propostaDeTeste(), &buf))

	linhas, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, linhas, 3)
	assert.Equal(t, "Item", linhas[0][0])
	assert.Equal(t, "DIPIRONA 500MG", linhas[1][1])
	assert.Equal(t, "10,0000", linhas[1][7])
	assert.Equal(t, "NÃO", linhas[1][11])
}

func TestExportarExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportarExcel(propostaDeTeste(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	valor, err := f.GetCellValue("Proposta", "B2")
	require.NoError(t, err)
	assert.Equal(t, "DIPIRONA 500MG", valor)

	total, err := f.GetCellValue("Proposta", "A5")
	require.NoError(t, err)
	assert.Equal(t, "VALOR TOTAL", total)
}
