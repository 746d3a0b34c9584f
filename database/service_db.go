// Package database guarda os catálogos de referência da distribuidora em
// SQLite: órgãos licitantes, fabricantes, abreviações e produtos. O núcleo de
// resolução não conhece este pacote; os catálogos saem daqui como slices e
// entram nas chamadas puras.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig configuração do pool de conexões.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DBConfigPadrao valores usados quando o chamador não configura o pool.
func DBConfigPadrao() DBConfig {
	return DBConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// ServiceDB encapsula a base de catálogos.
type ServiceDB struct {
	conn *sql.DB
}

// NewServiceDB abre (ou cria) a base no caminho informado e aplica as
// migrações. Use ":memory:" nos testes.
func NewServiceDB(caminho string, cfg DBConfig) (*ServiceDB, error) {
	conn, err := sql.Open("sqlite3", caminho+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir base %s: %w", caminho, err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &ServiceDB{conn: conn}
	if err := db.migrar(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("falha ao migrar base %s: %w", caminho, err)
	}
	return db, nil
}

// Close fecha a conexão.
func (db *ServiceDB) Close() error {
	return db.conn.Close()
}

// Ping verifica a conexão, usado pelo health check do servidor.
func (db *ServiceDB) Ping() error {
	return db.conn.Ping()
}
