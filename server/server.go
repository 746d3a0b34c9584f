// Package server expõe a API HTTP do preparador de propostas: resolução de
// fabricantes e órgãos, recálculo tributário, utilitários de edição (datas,
// moeda, extenso), catálogos de referência e importação de planilhas.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"propostaserver/database"
	"propostaserver/internal/config"
	"propostaserver/server/middleware"
)

// Server agrupa o roteador, a configuração e o banco de catálogos.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *database.ServiceDB
	logger *slog.Logger
}

// NewServer monta o servidor com os middlewares e as rotas da API.
func NewServer(cfg *config.Config, db *database.ServiceDB, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(),
		middleware.Gzip(),
		middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	s := &Server{
		router: router,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
	s.registrarRotas()
	return s
}

func (s *Server) registrarRotas() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		itens := api.Group("/itens")
		{
			itens.POST("/resolver", s.handleResolverItem)
			itens.POST("/recalcular", s.handleRecalcularItem)
			itens.POST("/totais", s.handleTotaisItens)
		}

		orgaos := api.Group("/orgaos")
		{
			orgaos.GET("", s.handleListarOrgaos)
			orgaos.POST("", s.handleInserirOrgao)
			orgaos.GET("/busca", s.handleBuscarOrgao)
			orgaos.GET("/uasg/:codigo", s.handleOrgaoPorUASG)
		}

		produtos := api.Group("/produtos")
		{
			produtos.GET("", s.handleListarProdutos)
			produtos.POST("", s.handleInserirProduto)
			produtos.GET("/busca", s.handleBuscarProdutos)
			produtos.GET("/:codigo", s.handleProdutoPorCodigo)
		}

		fabricantes := api.Group("/fabricantes")
		{
			fabricantes.GET("", s.handleListarFabricantes)
			fabricantes.POST("", s.handleInserirFabricante)
		}

		api.POST("/datas/atalho", s.handleAtalhoData)
		api.POST("/moeda/mascara", s.handleMascaraMoeda)
		api.GET("/extenso/:numero", s.handleNumeroPorExtenso)
		api.POST("/extenso/valor", s.handleValorPorExtenso)

		propostas := api.Group("/propostas")
		{
			propostas.POST("/totais", s.handleTotaisProposta)
			propostas.POST("/exportar", s.handleExportarProposta)
		}

		importar := api.Group("/importar")
		{
			importar.POST("/orgaos", s.handleImportarOrgaos)
			importar.POST("/fabricantes", s.handleImportarFabricantes)
			importar.POST("/produtos", s.handleImportarProdutos)
			importar.POST("/itens", s.handleImportarItens)
		}
	}
}

// Router expõe o roteador para os testes de handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run sobe o servidor HTTP e espera o contexto encerrar para desligar com
// graça.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("servidor iniciado", "porta", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("falha ao subir o servidor: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("desligando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("falha ao desligar o servidor: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "indisponivel", "erro": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
