package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	apicontrollers "github.com/drujensen/taskapi/internal/api/controllers"
	_ "github.com/drujensen/taskapi/internal/api/docs"
	"github.com/drujensen/taskapi/internal/api/websocket"
	"github.com/drujensen/taskapi/internal/domain/services"
	"github.com/drujensen/taskapi/internal/impl/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// WelcomeMessage is served for every route the API does not define.
const WelcomeMessage = "Welcome to the task server"

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg         *config.Config
	taskService services.TaskService
	hub         *websocket.TaskHub
	logger      *zap.Logger
	echo        *echo.Echo
	cancel      context.CancelFunc
}

// New wires middleware and routes. The websocket hub starts immediately and
// runs until Close is called.
func New(cfg *config.Config, taskService services.TaskService, logger *zap.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:         cfg,
		taskService: taskService,
		hub:         websocket.NewTaskHub(logger),
		logger:      logger,
		echo:        echo.New(),
		cancel:      cancel,
	}
	go s.hub.Run(ctx)

	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.HideBanner = true
	e.HidePort = true

	e.Pre(corsHeaders(s.cfg.CORSAllowOrigins, s.cfg.CORSAllowHeaders))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	e.Use(requestLogger(s.logger))
	e.Use(middleware.BodyLimit("100K"))

	api := e.Group("/api")
	apicontrollers.NewTaskController(s.logger, s.taskService).RegisterRoutes(api)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/ws", s.hub.Handle)

	e.Any("/", welcome)
	e.Any("/*", welcome)
}

// Echo exposes the router, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Run listens on the configured port until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()

	addr := ":" + s.cfg.Port
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info("Server running", zap.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

// Close stops the websocket hub.
func (s *Server) Close() {
	s.cancel()
}

func welcome(c echo.Context) error {
	return c.String(http.StatusOK, WelcomeMessage)
}

// corsHeaders injects cross-origin headers on every response, including
// fallbacks and errors.
func corsHeaders(origins, headers []string) echo.MiddlewareFunc {
	allowHeaders := strings.Join(headers, ", ")
	wildcard := slices.Contains(origins, "*")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			if wildcard {
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			} else {
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
				if origin := c.Request().Header.Get(echo.HeaderOrigin); slices.Contains(origins, origin) {
					h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				}
			}
			if allowHeaders != "" {
				h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			}
			return next(c)
		}
	}
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Error("Request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("Request handled", fields...)
			return nil
		},
	})
}
