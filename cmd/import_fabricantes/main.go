// Importa o catálogo de fabricantes e suas siglas a partir de uma planilha
// Excel.
package main

import (
	"flag"
	"log"

	"propostaserver/database"
	"propostaserver/importer"
)

func main() {
	arquivo := flag.String("arquivo", "", "planilha .xlsx com as colunas FABRICANTE e SIGLA")
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

	fabricantes, abreviacoes, err := importer.ParseFabricantesExcel(*arquivo)
	if err != nil {
		log.Fatalf("falha ao ler a planilha: %v", err)
	}

	for _, nome := range fabricantes {
		if err := db.InserirFabricante(nome); err != nil {
			log.Fatalf("falha ao gravar fabricante %q: %v", nome, err)
		}
	}
	for sigla, expansao := range abreviacoes {
		if err := db.InserirAbreviacao(sigla, expansao); err != nil {
			log.Fatalf("falha ao gravar abreviação %q: %v", sigla, err)
		}
	}
	log.Printf("importados %d fabricantes e %d abreviações de %s",
		len(fabricantes), len(abreviacoes), *arquivo)
}
