// Package http exposes the service over HTTP: routing, the bearer-token
// middleware that resolves the caller's identity, the role gate for the
// admin surface, and the request handlers.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrostami/taskkeeper/internal/logging"
	"github.com/hrostami/taskkeeper/internal/server/auth"
	"github.com/hrostami/taskkeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	engine    *gin.Engine
	logger    logging.Logger
	users     *services.UserService
	todos     *services.TodoService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *services.UserService, ts *services.TodoService, secretKey string) *Server {
	s := &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		todos:     ts,
		jwtSecret: []byte(secretKey),
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())

	r.GET("/ping", s.ping)
	r.POST("/auth", s.createUser)
	r.POST("/auth/token", s.login)

	protected := r.Group("/", s.authenticate())
	{
		protected.GET("/user", s.getUser)
		protected.PUT("/user/password", s.changePassword)

		protected.GET("/todo", s.listTodos)
		protected.GET("/todo/:id", s.getTodo)
		protected.POST("/todo", s.createTodo)
		protected.PUT("/todo/:id", s.updateTodo)
		protected.DELETE("/todo/:id", s.deleteTodo)

		admin := protected.Group("/admin", s.requireRole(auth.RoleAdmin))
		{
			admin.GET("/todo", s.adminListTodos)
			admin.DELETE("/todo/:id", s.adminDeleteTodo)
		}
	}

	return r
}

// Handler returns the router; tests drive it directly through httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
