// Importa o catálogo de produtos (código BR, nome e apresentação) a partir de
// uma planilha Excel.
package main

import (
	"flag"
	"log"

	"propostaserver/database"
	"propostaserver/importer"
)

func main() {
	arquivo := flag.String("arquivo", "", "planilha .xlsx com as colunas CÓDIGO, PRODUTO e APRESENTAÇÃO")
	caminhoDB := flag.String("db", "./data/catalogos.db", "caminho do banco de catálogos")
	flag.Parse()

	if *arquivo == "" {
		log.Fatal("informe a planilha com -arquivo")
	}

	db, err := database.NewServiceDB(*caminhoDB, database.DBConfigPadrao())
	if err != nil {
		log.Fatalf("falha ao abrir o banco: %v", err)
	}
	defer db.Close()

	produtos, err := importer.ParseProdutosExcel(*arquivo)
	if err != nil {
		log.Fatalf("falha ao ler a planilha: %v", err)
	}

	importados := 0
	for _, produto := range produtos {
		if err := db.InserirProduto(produto); err != nil {
			log.Printf("produto %q descartado: %v", produto.Codigo, err)
			continue
		}
		importados++
	}
	log.Printf("importados %d produtos de %s", importados, *arquivo)
}
