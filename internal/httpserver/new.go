package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"food-ordering-assistant/pkg/intentmodel"
	"food-ordering-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Chat engine
	jwtSecret       string
	rateLimitPerMin int
	model           intentmodel.Provider // nil when the model classifier is disabled
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	JWTSecret       string
	RateLimitPerMin int
	Model           intentmodel.Provider
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		jwtSecret:       cfg.JWTSecret,
		rateLimitPerMin: cfg.RateLimitPerMin,
		model:           cfg.Model,
	}

	if err := srv.validate(); err != nil {
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtSecret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
