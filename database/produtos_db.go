package database

import (
	"fmt"
	"strings"

	"propostaserver/resolucao"
)

// ListarProdutos devolve o catálogo de produtos na ordem de cadastro.
func (db *ServiceDB) ListarProdutos() ([]resolucao.Produto, error) {
	rows, err := db.conn.Query(`
		SELECT codigo, nome, apresentacao
		FROM produtos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar produtos: %w", err)
	}
	defer rows.Close()

	var produtos []resolucao.Produto
	for rows.Next() {
		var p resolucao.Produto
		if err := rows.Scan(&p.Codigo, &p.Nome, &p.Apresentacao); err != nil {
			return nil, fmt.Errorf("falha ao ler produto: %w", err)
		}
		produtos = append(produtos, p)
	}
	return produtos, rows.Err()
}

// InserirProduto cadastra um produto; código repetido atualiza o registro.
func (db *ServiceDB) InserirProduto(p resolucao.Produto) error {
	codigo := strings.TrimSpace(p.Codigo)
	nome := strings.TrimSpace(p.Nome)
	if codigo == "" || nome == "" {
		return fmt.Errorf("produto exige código e nome")
	}
	_, err := db.conn.Exec(`
		INSERT INTO produtos (codigo, nome, apresentacao)
		VALUES (?, ?, ?)
		ON CONFLICT(codigo) DO UPDATE SET
			nome = excluded.nome,
			apresentacao = excluded.apresentacao
	`, codigo, nome, strings.TrimSpace(p.Apresentacao))
	if err != nil {
		return fmt.Errorf("falha ao inserir produto %q: %w", codigo, err)
	}
	return nil
}
