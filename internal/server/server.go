// Package server exposes the decoder and the type registry over HTTP.
package server

import (
	"time"

	"github.com/danmuck/podctl/internal/config"
	"github.com/danmuck/podctl/internal/observability"
	"github.com/danmuck/podctl/internal/pod"
	"github.com/danmuck/podctl/internal/pod/typeinfo"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	ServiceName = "podctl"
	Version     = "0.0.1"

	// DefaultMaxBody caps the size of a decode request body.
	DefaultMaxBody int64 = 1 << 20
)

type Server struct {
	Addr     string
	MaxBody  int64
	Hexdump  bool
	appeared time.Time

	registry *typeinfo.Registry
	decoder  *pod.Decoder
	router   *gin.Engine
	logger   zerolog.Logger
}

// New wires a server for cfg over reg. Routes are registered by
// RegisterRoutes or Serve.
func New(cfg config.Config, reg *typeinfo.Registry, logger zerolog.Logger) *Server {
	observability.RegisterMetrics()
	logger = logger.With().Str("component", "server").Logger()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetricsMiddleware(ServiceName))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Server{
		Addr:     cfg.ListenAddr,
		MaxBody:  DefaultMaxBody,
		Hexdump:  cfg.Hexdump,
		appeared: time.Now(),
		registry: reg,
		decoder:  pod.NewDecoder(reg.Root(), cfg.DecoderOptions(logger)...),
		router:   r,
		logger:   logger,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Registry() *typeinfo.Registry {
	return s.registry
}

// Serve registers the routes and blocks on the listener.
func (s *Server) Serve() error {
	s.RegisterRoutes()
	s.logger.Info().Str("addr", s.Addr).Int("tables", s.registry.Len()).Msg("serving")
	return s.router.Run(s.Addr)
}
