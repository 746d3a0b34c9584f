// Importa o catálogo de órgãos a partir de uma planilha Excel.
package main

import (
	"flag"
	"log"

	"propostaserver/database"
	"propostaserver/importer"
)

func main() {
	arquivo := flag.String("arquivo", "", "planilha .xlsx com as colunas ÓRGÃO, UASG, PORTAL e UF")
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

	orgaos, err := importer.ParseOrgaosExcel(*arquivo)
	if err != nil {
		log.Fatalf("falha ao ler a planilha: %v", err)
	}

	log.Printf("lidos %d órgãos de %s", len(orgaos), *arquivo)
	importados := 0
	for _, orgao := range orgaos {
		if err := db.InserirOrgao(orgao); err != nil {
			log.Printf("órgão %q descartado: %v", orgao.Nome, err)
			continue
		}
		importados++
	}

	total, err := db.ContarOrgaos()
	if err != nil {
		log.Fatalf("falha ao contar órgãos: %v", err)
	}
	log.Printf("importados %d órgãos, catálogo com %d no total", importados, total)
}
