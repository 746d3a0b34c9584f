package database

import (
	"fmt"
	"log"

	"propostaserver/resolucao"
)

// Catálogo mínimo para a base recém-criada. A carga completa vem das
// planilhas via cmd/import_*.
var fabricantesSeed = []string{
	"EUROFARMA",
	"BOEHRINGER",
	"EMS",
	"ACHE",
	"CRISTALIA",
	"NEO QUIMICA",
	"UNIAO QUIMICA",
	"TEUTO",
	"HYPOFARMA",
	"PRATI-DONADUZZI",
	"GERMED",
	"BLAU",
}

var abreviacoesSeed = map[string]string{
	"EURO":  "EUROFARMA",
	"BOEH":  "BOEHRINGER",
	"CRIST": "CRISTALIA",
	"NEOQ":  "NEO QUIMICA",
	"UQ":    "UNIAO QUIMICA",
	"PRATI": "PRATI-DONADUZZI",
}

var orgaosSeed = []resolucao.Orgao{
	{Nome: "PREFEITURA MUNICIPAL DE VILA VELHA / ES", UASG: "925000", Portal: "compras.gov.br", UF: "ES"},
	{Nome: "PREFEITURA MUNICIPAL DE VITÓRIA / ES", UASG: "925100", Portal: "compras.gov.br", UF: "ES"},
	{Nome: "SECRETARIA DE ESTADO DA SAÚDE / ES", UASG: "280040", Portal: "compras.gov.br", UF: "ES"},
	{Nome: "FUNDO MUNICIPAL DE SAÚDE DE SERRA / ES", UASG: "926310", Portal: "bll.org.br", UF: "ES"},
	{Nome: "PREFEITURA MUNICIPAL DE CARIACICA / ES", UASG: "926200", Portal: "portaldecompraspublicas.com.br", UF: "ES"},
}

// SeedReferencia carrega o catálogo mínimo numa base vazia. Base já povoada
// não é tocada.
func (db *ServiceDB) SeedReferencia() error {
	total, err := db.ContarOrgaos()
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	log.Printf("Base vazia: carregando catálogo de referência inicial")

	for _, nome := range fabricantesSeed {
		if err := db.InserirFabricante(nome); err != nil {
			return fmt.Errorf("seed de fabricantes: %w", err)
		}
	}
	for sigla, expansao := range abreviacoesSeed {
		if err := db.InserirAbreviacao(sigla, expansao); err != nil {
			return fmt.Errorf("seed de abreviações: %w", err)
		}
	}
	for _, o := range orgaosSeed {
		if err := db.InserirOrgao(o); err != nil {
			return fmt.Errorf("seed de órgãos: %w", err)
		}
	}
	return nil
}
