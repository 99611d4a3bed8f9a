package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-live-raytracer/pkg/log"
	"github.com/df07/go-live-raytracer/pkg/renderer"
	"github.com/df07/go-live-raytracer/pkg/scene"
)

// Config contains the web server settings
type Config struct {
	Port       int    // Port to serve on
	StaticDir  string // Directory of static files served at / (optional)
	ScenesDir  string // Directory scanned for JSON scene files
	NumWorkers int    // Workers per render session (0 = use CPU count)
}

// Server handles web requests for the live raytracer
type Server struct {
	config Config
	logger log.Logger
	echo   *echo.Echo

	mu       sync.Mutex
	sessions map[string]*session
}

// session is one streaming render that accepts camera moves
type session struct {
	id        string
	raytracer *renderer.ProgressiveRaytracer
	cancel    context.CancelFunc
}

// NewServer creates a new web server
func NewServer(config Config, logger log.Logger) *Server {
	if logger == nil {
		logger = log.Discard()
	}

	s := &Server{
		config:   config,
		logger:   logger,
		echo:     echo.New(),
		sessions: make(map[string]*session),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.routes()

	return s
}

func (s *Server) routes() {
	s.echo.Use(corsMiddleware)

	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/render", s.handleRender)
	s.echo.POST("/api/render/:id/move", s.handleMove)
	s.echo.GET("/api/render/:id/inspect", s.handleInspect)

	if s.config.StaticDir != "" {
		if _, err := os.Stat(s.config.StaticDir); err == nil {
			s.echo.Static("/", s.config.StaticDir)
		}
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Noticef("Starting web server on http://localhost%s", addr)

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown ends every open render stream and waits for requests to finish
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for _, sess := range s.sessions {
		sess.cancel()
	}
	s.mu.Unlock()

	return s.echo.Shutdown(ctx)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	s.mu.Lock()
	active := len(s.sessions)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": active,
	})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(c echo.Context) error {
	response, err := scene.ListAllScenes(s.config.ScenesDir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) addSession(sess *session) {
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
}

func (s *Server) removeSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Server) getSession(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
