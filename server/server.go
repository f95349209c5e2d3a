package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Pkra99/persona-ai/internal/llm"
	"github.com/Pkra99/persona-ai/internal/persona"
)

type Options struct {
	Personas *persona.Registry
	Provider llm.Provider
	// ClientOrigin is the single origin allowed by CORS, with credentials.
	ClientOrigin string
	// ServeStatic enables serving the prebuilt client from frontend/dist.
	ServeStatic bool
	Logger      *slog.Logger
}

type Server struct {
	echo     *echo.Echo
	personas *persona.Registry
	provider llm.Provider
	log      *slog.Logger
}

func New(opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{opts.ClientOrigin},
		AllowCredentials: true,
	}))

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		echo:     e,
		personas: opts.Personas,
		provider: opts.Provider,
		log:      logger,
	}

	// Panics recovered by the middleware and any stray error must still come
	// back in the API envelope, not echo's default one.
	e.HTTPErrorHandler = s.errorHandler

	s.setupRoutes(opts.ServeStatic)
	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) setupRoutes(serveStatic bool) {
	api := s.echo.Group("/api")
	api.POST("/chat", s.handleChat)

	if serveStatic {
		s.echo.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  "frontend/dist",
			HTML5: true,
		}))
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	s.log.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	if err := c.JSON(code, chatResponse{OK: false, Error: message}); err != nil {
		s.log.Error("writing error response failed", "error", err)
	}
}
