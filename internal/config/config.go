// Package config carrega a configuração do servidor a partir das variáveis
// de ambiente, com valores padrão para uso local.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config configuração do servidor de propostas.
type Config struct {
	// Servidor
	Port string `json:"port"`

	// Base de catálogos
	ServiceDatabasePath string `json:"service_database_path"`

	// Pool de conexões
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Limite de requisições por cliente
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`

	// Logging
	LogLevel string `json:"log_level"`
}

// LoadConfig monta a configuração a partir do ambiente.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("SERVER_PORT", "9090"),
		ServiceDatabasePath: getEnv("SERVICE_DATABASE_PATH", "./data/catalogos.db"),
		MaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:        getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:     getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 100),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(chave, padrao string) string {
	if valor := os.Getenv(chave); valor != "" {
		return valor
	}
	return padrao
}

func getEnvInt(chave string, padrao int) int {
	if valor := os.Getenv(chave); valor != "" {
		if inteiro, err := strconv.Atoi(valor); err == nil {
			return inteiro
		}
	}
	return padrao
}

func getEnvFloat(chave string, padrao float64) float64 {
	if valor := os.Getenv(chave); valor != "" {
		if f, err := strconv.ParseFloat(valor, 64); err == nil {
			return f
		}
	}
	return padrao
}

func getEnvDuration(chave string, padrao time.Duration) time.Duration {
	if valor := os.Getenv(chave); valor != "" {
		if duracao, err := time.ParseDuration(valor); err == nil {
			return duracao
		}
	}
	return padrao
}
