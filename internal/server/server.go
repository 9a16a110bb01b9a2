package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/danmuck/ocppcodec/internal/config"
	"github.com/danmuck/ocppcodec/internal/observability"
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/envelope"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server exposes the codec over HTTP for inspection: action listings and
// frame normalisation. It holds one codec per protocol version.
type Server struct {
	cfg     config.Config
	logger  zerolog.Logger
	codecs  map[protocol.Version]*envelope.Codec
	router  *gin.Engine
	started time.Time
}

func New(cfg config.Config, logger zerolog.Logger) *Server {
	if cfg.MetricsEnabled {
		observability.RegisterMetrics()
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	if cfg.MetricsEnabled {
		r.Use(observability.RequestMetricsMiddleware())
	}
	if origins := normalizeOrigins(cfg.CorsOrigins); len(origins) > 0 {
		cc := cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}
		if slices.Contains(origins, "*") {
			cc.AllowOrigins = nil
			cc.AllowAllOrigins = true
		}
		r.Use(cors.New(cc))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		codecs:  make(map[protocol.Version]*envelope.Codec),
		router:  r,
		started: time.Now(),
	}
	for _, v := range protocol.Versions() {
		s.codecs[v] = config.NewCodec(cfg, v)
	}
	s.registerRoutes()
	return s
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.ListenAddr).Str("protocol", s.cfg.Protocol.String()).Msg("http_listen")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info().Msg("http_shutdown")
		return srv.Shutdown(shutdownCtx)
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
