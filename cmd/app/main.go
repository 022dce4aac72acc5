package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/leporo/sqlf"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/api"
	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage/memstore"
	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage/pgstore"
	adminservice "github.com/mmsswimming/go_academy_backend/internal/app/admin"
	"github.com/mmsswimming/go_academy_backend/internal/app/auth"
	catalogservice "github.com/mmsswimming/go_academy_backend/internal/app/catalog"
	contentservice "github.com/mmsswimming/go_academy_backend/internal/app/content"
	enrollmentservice "github.com/mmsswimming/go_academy_backend/internal/app/enrollment"
	memberservice "github.com/mmsswimming/go_academy_backend/internal/app/members"
	"github.com/mmsswimming/go_academy_backend/internal/app/messagebus"
	"github.com/mmsswimming/go_academy_backend/internal/config"
	"github.com/mmsswimming/go_academy_backend/internal/domain"
	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	bus.Register(user.EventRegistered, func(event domain.Event) error {
		e := event.(user.RegisteredEvent)
		logger.Info("new member registered", "email", e.Email)
		return nil
	})
	bus.Register(user.EventLogin, func(event domain.Event) error {
		e := event.(user.LoginEvent)
		logger.Info("user logged in",
			"user_id", e.UserID,
			"browser", e.Device.Browser,
			"os", e.Device.OS,
			"ip", e.Device.IPAddress,
		)
		return nil
	})
	bus.Register(enrollment.EventBookingCreated, func(event domain.Event) error {
		e := event.(enrollment.BookingCreatedEvent)
		logger.Info("booking created", "booking_id", e.BookingID, "class_id", e.ClassID)
		return nil
	})
	bus.Register(content.EventContactReceived, func(event domain.Event) error {
		e := event.(content.ContactReceivedEvent)
		logger.Info("contact message received", "contact_id", e.ContactID, "subject", e.Subject)
		return nil
	})
	defer bus.Close()

	store := initStorage(cfg)

	authorizer := &auth.Authorizer{
		Cost:     bcrypt.DefaultCost,
		Secret:   cfg.JWT.Secret,
		TokenTTL: cfg.JWT.TokenTTL,
	}

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.AuthService(auth.NewService(store, authorizer, bus, logger)),
		api.MemberService(memberservice.New(store, logger)),
		api.CatalogService(catalogservice.New(store, logger)),
		api.EnrollmentService(enrollmentservice.New(store, bus, logger)),
		api.ContentService(contentservice.New(store, bus, logger)),
		api.AdminService(adminservice.New(store, logger)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server closed with unexpected error", "error", err)
		}
	}
	logger.Info("server shutdown")
}

func initStorage(cfg *config.Config) storage.Storage {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		sqlf.SetDialect(sqlf.PostgreSQL)

		db, err := sql.Open("pgx", cfg.Storage.DSN)
		if err != nil {
			panic("failed to connect database: " + err.Error())
		}
		return pgstore.New(&storage.DB{DB: db})
	case config.DriverMemory:
		return memstore.New()
	default:
		panic("unknown storage driver")
	}
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
