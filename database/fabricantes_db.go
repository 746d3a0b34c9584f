package database

import (
	"fmt"
	"strings"
)

// ListarFabricantes devolve os nomes ordenados do mais longo para o mais
// curto, a ordem de resolução exigida pelo resolvedor de fabricante; empate
// de comprimento mantém a ordem de cadastro.
func (db *ServiceDB) ListarFabricantes() ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT nome
		FROM fabricantes
		ORDER BY LENGTH(nome) DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar fabricantes: %w", err)
	}
	defer rows.Close()

	var nomes []string
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("falha ao ler fabricante: %w", err)
		}
		nomes = append(nomes, nome)
	}
	return nomes, rows.Err()
}

// InserirFabricante cadastra um fabricante, ignorando nomes repetidos.
func (db *ServiceDB) InserirFabricante(nome string) error {
	nome = strings.ToUpper(strings.TrimSpace(nome))
	if nome == "" {
		return fmt.Errorf("fabricante sem nome")
	}
	_, err := db.conn.Exec(`INSERT OR IGNORE INTO fabricantes (nome) VALUES (?)`, nome)
	if err != nil {
		return fmt.Errorf("falha ao inserir fabricante %q: %w", nome, err)
	}
	return nil
}

// ListarAbreviacoes devolve o mapa sigla -> expansão usado na normalização.
func (db *ServiceDB) ListarAbreviacoes() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT sigla, expansao FROM abreviacoes`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar abreviações: %w", err)
	}
	defer rows.Close()

	abreviacoes := make(map[string]string)
	for rows.Next() {
		var sigla, expansao string
		if err := rows.Scan(&sigla, &expansao); err != nil {
			return nil, fmt.Errorf("falha ao ler abreviação: %w", err)
		}
		abreviacoes[strings.ToUpper(sigla)] = strings.ToUpper(expansao)
	}
	return abreviacoes, rows.Err()
}

// InserirAbreviacao cadastra ou atualiza uma abreviação.
func (db *ServiceDB) InserirAbreviacao(sigla, expansao string) error {
	sigla = strings.ToUpper(strings.TrimSpace(sigla))
	expansao = strings.ToUpper(strings.TrimSpace(expansao))
	if sigla == "" || expansao == "" {
		return fmt.Errorf("abreviação exige sigla e expansão")
	}
	_, err := db.conn.Exec(`
		INSERT INTO abreviacoes (sigla, expansao)
		VALUES (?, ?)
		ON CONFLICT(sigla) DO UPDATE SET expansao = excluded.expansao
	`, sigla, expansao)
	if err != nil {
		return fmt.Errorf("falha ao inserir abreviação %q: %w", sigla, err)
	}
	return nil
}
