package database

import "fmt"

// migracoes na ordem de aplicação. O UNIQUE COLLATE NOCASE nos nomes faz a
// deduplicação exigida dos catálogos na própria base.
var migracoes = []string{
	`CREATE TABLE IF NOT EXISTS orgaos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL UNIQUE COLLATE NOCASE,
		uasg TEXT NOT NULL DEFAULT '',
		portal TEXT NOT NULL DEFAULT '',
		uf TEXT NOT NULL DEFAULT '',
		criado_em TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orgaos_uasg ON orgaos(uasg)`,

	`CREATE TABLE IF NOT EXISTS fabricantes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL UNIQUE COLLATE NOCASE,
		criado_em TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS abreviacoes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sigla TEXT NOT NULL UNIQUE COLLATE NOCASE,
		expansao TEXT NOT NULL,
		criado_em TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS produtos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		codigo TEXT NOT NULL UNIQUE,
		nome TEXT NOT NULL,
		apresentacao TEXT NOT NULL DEFAULT '',
		criado_em TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrar aplica as migrações pendentes. Todas são idempotentes.
func (db *ServiceDB) migrar() error {
	for i, stmt := range migracoes {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("migração %d falhou: %w", i+1, err)
		}
	}
	return nil
}
