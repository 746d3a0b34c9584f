package database

import (
	"fmt"
	"strings"

	"propostaserver/resolucao"
)

// ListarOrgaos devolve o catálogo de órgãos na ordem de cadastro, que é a
// ordem de iteração dos resolvedores (estático primeiro, dinâmico depois).
func (db *ServiceDB) ListarOrgaos() ([]resolucao.Orgao, error) {
	rows, err := db.conn.Query(`
		SELECT nome, uasg, portal, uf
		FROM orgaos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar órgãos: %w", err)
	}
	defer rows.Close()

	var orgaos []resolucao.Orgao
	for rows.Next() {
		var o resolucao.Orgao
		if err := rows.Scan(&o.Nome, &o.UASG, &o.Portal, &o.UF); err != nil {
			return nil, fmt.Errorf("falha ao ler órgão: %w", err)
		}
		orgaos = append(orgaos, o)
	}
	return orgaos, rows.Err()
}

// InserirOrgao cadastra um órgão; nome repetido (sem distinção de maiúsculas)
// atualiza o registro existente em vez de duplicar.
func (db *ServiceDB) InserirOrgao(o resolucao.Orgao) error {
	nome := strings.TrimSpace(o.Nome)
	if nome == "" {
		return fmt.Errorf("órgão sem nome")
	}
	if o.UF != "" && !resolucao.UFValida(o.UF) {
		return fmt.Errorf("UF inválida: %q", o.UF)
	}

	_, err := db.conn.Exec(`
		INSERT INTO orgaos (nome, uasg, portal, uf)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(nome) DO UPDATE SET
			uasg = excluded.uasg,
			portal = excluded.portal,
			uf = excluded.uf
	`, nome, strings.TrimSpace(o.UASG), strings.TrimSpace(o.Portal), strings.ToUpper(strings.TrimSpace(o.UF)))
	if err != nil {
		return fmt.Errorf("falha ao inserir órgão %q: %w", nome, err)
	}
	return nil
}

// ContarOrgaos devolve o total cadastrado, usado pelo seed e pelos relatórios.
func (db *ServiceDB) ContarOrgaos() (int, error) {
	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM orgaos`).Scan(&total); err != nil {
		return 0, fmt.Errorf("falha ao contar órgãos: %w", err)
	}
	return total, nil
}
