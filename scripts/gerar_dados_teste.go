// Gera planilhas de teste para os importadores: órgãos, fabricantes,
// produtos e itens de edital com dados sintéticos.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/xuri/excelize/v2"
)

var ufs = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS",
	"MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC",
	"SP", "SE", "TO",
}

var tiposOrgao = []string{
	"PREFEITURA MUNICIPAL DE", "SECRETARIA DE SAÚDE DE", "HOSPITAL MUNICIPAL DE",
	"FUNDO MUNICIPAL DE SAÚDE DE", "SANTA CASA DE",
}

var medicamentos = []string{
	"DIPIRONA SÓDICA", "PARACETAMOL", "IBUPROFENO", "AMOXICILINA",
	"OMEPRAZOL", "LOSARTANA POTÁSSICA", "METFORMINA", "CAPTOPRIL",
	"SORO FISIOLÓGICO 0,9%", "CLORIDRATO DE METOCLOPRAMIDA",
}

var apresentacoes = []string{
	"500MG COMPRIMIDO", "250MG/5ML SUSPENSÃO ORAL", "10MG/ML SOLUÇÃO INJETÁVEL",
	"850MG COMPRIMIDO REVESTIDO", "BOLSA 500ML",
}

func main() {
	linhas := flag.Int("linhas", 200, "quantidade de linhas por planilha")
	saida := flag.String("saida", filepath.Join("tests", "dados"), "diretório de saída")
	flag.Parse()

	gofakeit.Seed(0)

	if err := os.MkdirAll(*saida, 0o755); err != nil {
		log.Fatalf("falha ao criar diretório de saída: %v", err)
	}

	gerar(*saida, "orgaos.xlsx", []string{"ÓRGÃO", "UASG", "PORTAL", "UF"}, *linhas, linhaOrgao)
	gerar(*saida, "fabricantes.xlsx", []string{"FABRICANTE", "SIGLA"}, *linhas, linhaFabricante)
	gerar(*saida, "produtos.xlsx", []string{"CÓDIGO", "PRODUTO", "APRESENTAÇÃO"}, *linhas, linhaProduto)
	gerar(*saida, "itens.xlsx", []string{"ITEM", "DESCRIÇÃO", "MARCA", "UNIDADE", "QUANTIDADE", "VALOR UNITÁRIO"}, *linhas, linhaItem)
}

func gerar(dir, nome string, cabecalhos []string, linhas int, linha func(i int) []interface{}) {
	f := excelize.NewFile()
	defer f.Close()

	aba := "Sheet1"
	for col, cabecalho := range cabecalhos {
		celula, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(aba, celula, cabecalho)
	}
	for i := 0; i < linhas; i++ {
		valores := linha(i)
		for col, valor := range valores {
			celula, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(aba, celula, valor)
		}
	}

	caminho := filepath.Join(dir, nome)
	if err := f.SaveAs(caminho); err != nil {
		log.Fatalf("falha ao gravar %s: %v", caminho, err)
	}
	log.Printf("gerado %s com %d linhas", caminho, linhas)
}

func linhaOrgao(int) []interface{} {
	return []interface{}{
		fmt.Sprintf("%s %s", gofakeit.RandomString(tiposOrgao), gofakeit.City()),
		fmt.Sprintf("%06d", gofakeit.Number(100000, 999999)),
		"comprasnet",
		gofakeit.RandomString(ufs),
	}
}

func linhaFabricante(int) []interface{} {
	nome := gofakeit.Company()
	sigla := ""
	if gofakeit.Bool() {
		sigla = nome[:min(4, len(nome))]
	}
	return []interface{}{nome, sigla}
}

func linhaProduto(i int) []interface{} {
	return []interface{}{
		fmt.Sprintf("BR%06d", i+1),
		gofakeit.RandomString(medicamentos),
		gofakeit.RandomString(apresentacoes),
	}
}

func linhaItem(i int) []interface{} {
	return []interface{}{
		i + 1,
		fmt.Sprintf("%s %s", gofakeit.RandomString(medicamentos), gofakeit.RandomString(apresentacoes)),
		gofakeit.Company(),
		"COMPRIMIDO",
		gofakeit.Number(10, 5000),
		fmt.Sprintf("%d,%04d", gofakeit.Number(1, 200), gofakeit.Number(0, 9999)),
	}
}
