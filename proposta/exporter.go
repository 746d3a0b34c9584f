package proposta

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"propostaserver/moeda"
)

// Formato de exportação da proposta.
type Formato string

const (
	FormatoJSON  Formato = "json"
	FormatoCSV   Formato = "csv"
	FormatoExcel Formato = "excel"
)

var cabecalhos = []string{
	"Item", "Descrição", "Marca", "Fabricante", "Unidade", "Quantidade",
	"Unitário c/ ICMS", "Unitário s/ ICMS", "Total c/ ICMS", "Total s/ ICMS",
	"Convênio", "CAP",
}

// ExportarJSON escreve a proposta em JSON com o total e o total por extenso.
func ExportarJSON(p *Proposta, w io.Writer) error {
	totalExtenso, err := p.TotalPorExtenso()
	if err != nil {
		totalExtenso = ""
	}

	saida := map[string]interface{}{
		"exportado_em":   time.Now().Format(time.RFC3339),
		"proposta":       p,
		"total":          p.Total(),
		"total_extenso":  totalExtenso,
		"total_exibicao": moeda.FormatarExibicao(moeda.Nulo(p.Total())),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(saida); err != nil {
		return fmt.Errorf("falha ao escrever JSON: %w", err)
	}
	return nil
}

// ExportarCSV escreve os itens da proposta em CSV.
func ExportarCSV(p *Proposta, w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(cabecalhos); err != nil {
		return fmt.Errorf("falha ao escrever cabeçalho: %w", err)
	}

	for _, item := range p.Itens {
		registro := []string{
			fmt.Sprintf("%d", item.Numero),
			item.Descricao,
			item.Marca,
			item.Fabricante,
			item.Unidade,
			item.Preco.Quantidade.String(),
			moeda.FormatarEdicao(item.Preco.UnitarioComICMS),
			moeda.FormatarEdicao(item.Preco.UnitarioSemICMS),
			moeda.FormatarEdicao(item.Preco.TotalComICMS),
			moeda.FormatarEdicao(item.Preco.TotalSemICMS),
			item.Preco.Convenio.String(),
			simNao(item.Preco.CAP),
		}
		if err := writer.Write(registro); err != nil {
			return fmt.Errorf("falha ao escrever item %d: %w", item.Numero, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportarExcel escreve a proposta em uma planilha com cabeçalho destacado e
// a linha de total no rodapé.
func ExportarExcel(p *Proposta, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	aba := "Proposta"
	indice, err := f.NewSheet(aba)
	if err != nil {
		return fmt.Errorf("falha ao criar aba: %w", err)
	}

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("falha ao criar estilo de cabeçalho: %w", err)
	}

	for i, cabecalho := range cabecalhos {
		celula, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(aba, celula, cabecalho)
		f.SetCellStyle(aba, celula, celula, estiloCabecalho)
	}

	for idx, item := range p.Itens {
		linha := idx + 2
		valores := []interface{}{
			item.Numero,
			item.Descricao,
			item.Marca,
			item.Fabricante,
			item.Unidade,
			item.Preco.Quantidade.InexactFloat64(),
			floatOuVazio(item.Preco.UnitarioComICMS),
			floatOuVazio(item.Preco.UnitarioSemICMS),
			floatOuVazio(item.Preco.TotalComICMS),
			floatOuVazio(item.Preco.TotalSemICMS),
			item.Preco.Convenio.String(),
			simNao(item.Preco.CAP),
		}
		for col, valor := range valores {
			celula, _ := excelize.CoordinatesToCellName(col+1, linha)
			f.SetCellValue(aba, celula, valor)
		}
	}

	linhaTotal := len(p.Itens) + 3
	f.SetCellValue(aba, fmt.Sprintf("A%d", linhaTotal), "VALOR TOTAL")
	f.SetCellValue(aba, fmt.Sprintf("B%d", linhaTotal), moeda.FormatarExibicao(moeda.Nulo(p.Total())))
	if extensoTotal, err := p.TotalPorExtenso(); err == nil {
		f.SetCellValue(aba, fmt.Sprintf("C%d", linhaTotal), extensoTotal)
	}

	for i := range cabecalhos {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(aba, col, col, 18)
	}

	f.SetActiveSheet(indice)
	f.DeleteSheet("Sheet1")

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("falha ao gravar planilha: %w", err)
	}
	return nil
}

func simNao(v bool) string {
	if v {
		return "SIM"
	}
	return "NÃO"
}

func floatOuVazio(v decimal.NullDecimal) interface{} {
	if !v.Valid {
		return ""
	}
	return v.Decimal.InexactFloat64()
}
