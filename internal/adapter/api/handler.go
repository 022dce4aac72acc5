package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"

	adminservice "github.com/mmsswimming/go_academy_backend/internal/app/admin"
	"github.com/mmsswimming/go_academy_backend/internal/app/auth"
	catalogservice "github.com/mmsswimming/go_academy_backend/internal/app/catalog"
	contentservice "github.com/mmsswimming/go_academy_backend/internal/app/content"
	enrollmentservice "github.com/mmsswimming/go_academy_backend/internal/app/enrollment"
	memberservice "github.com/mmsswimming/go_academy_backend/internal/app/members"
)

type Server struct {
	handler           *echo.Echo
	logger            *slog.Logger
	addr              string
	authService       *auth.Service
	memberService     *memberservice.Service
	catalogService    *catalogservice.Service
	enrollmentService *enrollmentservice.Service
	contentService    *contentservice.Service
	adminService      *adminservice.Service
	validator         *validator.Validate
}

func NewServer(opt ...Option) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Server.WriteTimeout = 10 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.IdleTimeout = 10 * time.Second
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.MaxHeaderBytes = 4096

	s := &Server{
		handler:   e,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}

	for _, opt := range opt {
		opt(s)
	}

	e.Use(slogecho.NewWithConfig(s.logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelInfo,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))

	s.Mount()
	return s
}

func (s *Server) Mount() {
	api := s.handler.Group("/api")

	s.MountAuth(api)
	s.MountMembers(api)
	s.MountCatalog(api)
	s.MountEnrollment(api)
	s.MountContent(api)
	s.MountAdmin(api)
}

// Handler exposes the root handler for httptest-driven tests.
func (s *Server) Handler() *echo.Echo {
	return s.handler
}

func (s *Server) Start() error {
	return s.handler.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.handler.Shutdown(ctx)
}

func (s *Server) bind(ctx echo.Context, i interface{}) error {
	if err := ctx.Bind(i); err != nil {
		return fmt.Errorf("bad request")
	}
	if err := s.validator.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return fmt.Errorf("bad request")
		}
		return fmt.Errorf("%s: %s", errs[0].Field(), errs[0].Error())
	}
	return nil
}
