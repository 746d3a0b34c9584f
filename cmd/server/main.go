// Servidor HTTP do preparador de propostas de licitação.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"propostaserver/database"
	"propostaserver/internal/config"
	"propostaserver/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("configuração inválida", "erro", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: nivelDeLog(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if dir := filepath.Dir(cfg.ServiceDatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("falha ao criar diretório do banco", "erro", err)
			os.Exit(1)
		}
	}

	db, err := database.NewServiceDB(cfg.ServiceDatabasePath, database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error("falha ao abrir o banco de catálogos", "erro", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.SeedReferencia(); err != nil {
		logger.Error("falha ao semear os catálogos", "erro", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(cfg, db, logger)
	inicio := time.Now()
	if err := srv.Run(ctx); err != nil {
		logger.Error("servidor encerrou com erro", "erro", err)
		os.Exit(1)
	}
	logger.Info("servidor encerrado", "tempo_em_pe", time.Since(inicio))
}

func nivelDeLog(nome string) slog.Level {
	switch nome {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
