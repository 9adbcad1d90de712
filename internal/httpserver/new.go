package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"repair-assistant/internal/chat"
	"repair-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	redis goredis.UniversalClient

	// Chat domain
	chatUC         chat.UseCase
	requestsPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Redis is pinged by the readiness probe. Optional.
	Redis goredis.UniversalClient

	// Chat domain
	ChatUseCase    chat.UseCase
	RequestsPerMin int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		redis:          cfg.Redis,
		chatUC:         cfg.ChatUseCase,
		requestsPerMin: cfg.RequestsPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
