// Package mockserver implements an in-memory stand-in for the MailFinch
// letters API. It speaks the same envelope format as the real service and
// is used by the client's tests and by cmd/mockserver for local work.
package mockserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Letter statuses reported by the mock.
const (
	StatusDraft     = "draft"
	StatusPurchased = "purchased"
	StatusSent      = "sent"
)

// Options configures a Server.
type Options struct {
	// APIKeys lists the accepted api_key values. Empty accepts any non-empty key.
	APIKeys []string
	// Port is the listen port used by Run.
	Port int
	// DevMode keeps gin in debug mode.
	DevMode bool
	// Store holds the letters. A fresh store is created when nil.
	Store *Store
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// Logger receives request logs. Defaults to zerolog.Nop().
	Logger *zerolog.Logger
}

// Server is the mock MailFinch API.
type Server struct {
	Engine     *gin.Engine
	HttpServer *http.Server
	Store      *Store

	apiKeys map[string]struct{}
	now     func() time.Time
	logger  zerolog.Logger
}

// New creates a Server with its routes registered.
func New(options Options) *Server {
	if !options.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		Store:   options.Store,
		apiKeys: make(map[string]struct{}, len(options.APIKeys)),
		now:     options.Now,
		logger:  zerolog.Nop(),
	}
	if s.Store == nil {
		s.Store = NewStore()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if options.Logger != nil {
		s.logger = *options.Logger
	}
	for _, k := range options.APIKeys {
		s.apiKeys[k] = struct{}{}
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())
	s.Engine = engine

	s.HttpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", options.Port),
		Handler: engine,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Engine.GET("/letters.json", s.listLettersHandler())
	s.Engine.POST("/letters.json", s.createLetterHandler())
	s.Engine.GET("/letters/:id", s.getLetterHandler())
	s.Engine.PUT("/letters/:id", s.updateLetterHandler())
	s.Engine.GET("/letters/:id/purchase.json", s.purchaseLetterHandler())
}

// ServeHTTP lets the server be mounted on an httptest.Server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Run listens on the configured port until Shutdown is called.
func (s *Server) Run() error {
	if err := s.HttpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HttpServer.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Next()
		s.logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// authorized reports whether key is accepted.
func (s *Server) authorized(key string) bool {
	if key == "" {
		return false
	}
	if len(s.apiKeys) == 0 {
		return true
	}
	_, ok := s.apiKeys[key]
	return ok
}
