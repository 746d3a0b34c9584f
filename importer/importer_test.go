package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// gravarPlanilha monta uma planilha temporária com as linhas dadas.
func gravarPlanilha(t *testing.T, linhas [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, linha := range linhas {
		for j, valor := range linha {
			celula, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", celula, valor))
		}
	}

	caminho := filepath.Join(t.TempDir(), "planilha.xlsx")
	require.NoError(t, f.SaveAs(caminho))
	return caminho
}

func TestParseOrgaosExcel(t *testing.T) {
	caminho := gravarPlanilha(t, [][]interface{}{
		{"Catálogo de órgãos"},
		{"Órgão", "UASG", "Portal", "UF"},
		{"Prefeitura Municipal de Vila Velha / ES", "925000", "compras.gov.br", "ES"},
		{"Secretaria de Estado da Saúde / ES", "280040", "", "es"},
		{""},
	})

	orgaos, err := ParseOrgaosExcel(caminho)
	require.NoError(t, err)
	require.Len(t, orgaos, 2)
	assert.Equal(t, "PREFEITURA MUNICIPAL DE VILA VELHA / ES", orgaos[0].Nome)
	assert.Equal(t, "925000", orgaos[0].UASG)
	assert.Equal(t, "ES", orgaos[1].UF)
}

func TestParseOrgaosExcelUFInvalida(t *testing.T) {
	caminho := gravarPlanilha(t, [][]interface{}{
		{"Órgão", "UF"},
		{"Prefeitura X", "ZZ"},
	})
	_, err := ParseOrgaosExcel(caminho)
	assert.ErrorContains(t, err, "UF inválida")
}

func TestParseOrgaosExcelSemCabecalho(t *testing.T) {
	caminho := gravarPlanilha(t, [][]interface{}{
		{"qualquer", "coisa"},
		{"sem", "cabeçalho"},
	})
	_, err := ParseOrgaosExcel(caminho)
	assert.ErrorContains(t, err, "cabeçalho não encontrado")
}

func TestParseFabricantesExcel(t *testing.T) {
	caminho := gravarPlanilha(t, [][]interface{}{
		{"Fabricante", "Sigla"},
		{"Eurofarma", "EURO"},
		{"Boehringer", "BOEH"},
		{"EMS", ""},
	})

	fabricantes, abreviacoes, err := ParseFabricantesExcel(caminho)
	require.NoError(t, err)
	assert.Equal(t, []string{"EUROFARMA", "BOEHRINGER", "EMS"}, fabricantes)
	assert.Equal(t, map[string]string{"EURO": "EUROFARMA", "BOEH": "BOEHRINGER"}, abreviacoes)
}

func TestParseProdutosExcel(t *testing.T) {
	caminho := gravarPlanilha(t, [][]interface{}{
		{"Código", "Produto", "Apresentação"},
		{"1001", "Dipirona Sódica 500mg", "Comprimido"},
		{"2040", "Amoxicilina 500mg", "Cápsula"},
	})

	produtos, err := ParseProdutosExcel(caminho)
	require.NoError(t, err)
	require.Len(t, produtos, 2)
	assert.Equal(t, "1001", produtos[0].Codigo)
	assert.Equal(t, "DIPIRONA SÓDICA 500MG", produtos[0].Nome)
	assert.Equal(t, "CÁPSULA", produtos[1].Apresentacao)
}

func TestParseProdutosExcelLinhaIncompleta(t *testing.T) {
	caminho := gravarPlanilha(t, [][]interface{}{
		{"Código", "Produto"},
		{"1001", ""},
	})
	_, err := ParseProdutosExcel(caminho)
	assert.ErrorContains(t, err, "código ou produto vazio")
}

func TestParseItensExcel(t *testing.T) {
	caminho := gravarPlanilha(t, [][]interface{}{
		{"Edital 12/2026"},
		{"Item", "Descrição", "Marca", "Unidade", "Quantidade", "Valor Unitário"},
		{"1", "Dipirona 500mg", "Genérico", "CP", "1000", "0,8950"},
		{"2", "Amoxicilina 500mg", "", "CAP", "500", ""},
	})

	itens, err := ParseItensExcel(caminho)
	require.NoError(t, err)
	require.Len(t, itens, 2)

	assert.Equal(t, 1, itens[0].Numero)
	assert.Equal(t, "DIPIRONA 500MG", itens[0].Descricao)
	assert.Equal(t, "GENÉRICO", itens[0].Marca)
	assert.Equal(t, "1000", itens[0].Preco.Quantidade.String())
	require.True(t, itens[0].Preco.UnitarioComICMS.Valid)
	assert.Equal(t, "0.895", itens[0].Preco.UnitarioComICMS.Decimal.String())

	assert.False(t, itens[1].Preco.UnitarioComICMS.Valid)
}
