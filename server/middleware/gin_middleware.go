// Package middleware reúne os middlewares Gin do servidor de propostas:
// request ID, CORS, logging, recuperação de pânico, compressão e limite de
// requisições por cliente.
package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// chaveRequestID é a chave do request ID no contexto Gin.
const chaveRequestID = "request_id"

// RequestID adiciona um identificador único a cada requisição, reaproveitando
// o X-Request-ID do cliente quando presente.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Set(chaveRequestID, reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}

// RequestIDDe extrai o request ID do contexto Gin.
func RequestIDDe(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Get(chaveRequestID); ok {
		if texto, ok := id.(string); ok {
			return texto
		}
	}
	return ""
}

// CORS libera o acesso da interface de edição servida em outra origem.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Gzip habilita compressão das respostas.
func Gzip() gin.HandlerFunc {
	return gzip.Gzip(gzip.BestSpeed)
}

// Logger registra cada requisição com latência, status e request ID.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		caminho := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			caminho += "?" + query
		}

		c.Next()

		logger.Info("requisição atendida",
			"metodo", c.Request.Method,
			"caminho", caminho,
			"status", c.Writer.Status(),
			"latencia", time.Since(inicio),
			"ip", c.ClientIP(),
			"request_id", RequestIDDe(c),
		)
	}
}

// Recovery captura pânicos dos handlers e devolve 500 com o request ID.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("pânico recuperado",
					"erro", r,
					"caminho", c.Request.URL.Path,
					"request_id", RequestIDDe(c),
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"erro":       "erro interno do servidor",
					"request_id": RequestIDDe(c),
				})
			}
		}()
		c.Next()
	}
}

// RateLimit limita as requisições por IP de cliente.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		mu          sync.Mutex
		limitadores = make(map[string]*rate.Limiter)
	)

	limitadorDe := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limitador, ok := limitadores[ip]
		if !ok {
			limitador = rate.NewLimiter(rate.Limit(rps), burst)
			limitadores[ip] = limitador
		}
		return limitador
	}

	return func(c *gin.Context) {
		if !limitadorDe(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"erro": "muitas requisições, tente novamente em instantes",
			})
			return
		}
		c.Next()
	}
}
