package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate verifica a consistência da configuração e acumula todos os
// problemas numa única mensagem.
func (c *Config) Validate() error {
	var problemas []string

	if c.Port == "" {
		problemas = append(problemas, "porta é obrigatória")
	} else if porta, err := strconv.Atoi(c.Port); err != nil {
		problemas = append(problemas, fmt.Sprintf("porta inválida: %s", c.Port))
	} else if porta < 1 || porta > 65535 {
		problemas = append(problemas, fmt.Sprintf("porta deve estar entre 1 e 65535, recebida %d", porta))
	}

	if c.ServiceDatabasePath == "" {
		problemas = append(problemas, "caminho da base de catálogos é obrigatório")
	}

	if c.MaxOpenConns < 1 {
		problemas = append(problemas, "max_open_conns deve ser no mínimo 1")
	}
	if c.MaxIdleConns < 0 || c.MaxIdleConns > c.MaxOpenConns {
		problemas = append(problemas, "max_idle_conns deve estar entre 0 e max_open_conns")
	}

	if c.RateLimitRPS <= 0 {
		problemas = append(problemas, "rate_limit_rps deve ser positivo")
	}
	if c.RateLimitBurst < 1 {
		problemas = append(problemas, "rate_limit_burst deve ser no mínimo 1")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problemas = append(problemas, fmt.Sprintf("log_level desconhecido: %s", c.LogLevel))
	}

	if len(problemas) > 0 {
		return fmt.Errorf("configuração inválida: %s", strings.Join(problemas, "; "))
	}
	return nil
}
