package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffdesk/employee-api/internal/api"
	"github.com/staffdesk/employee-api/internal/core/ports"
	"github.com/staffdesk/employee-api/internal/core/service"
	"github.com/staffdesk/employee-api/internal/infrastructure/config"
	"github.com/staffdesk/employee-api/internal/infrastructure/db/memory"
	mongodb "github.com/staffdesk/employee-api/internal/infrastructure/db/mongo"
	redisdb "github.com/staffdesk/employee-api/internal/infrastructure/db/redis"
	"github.com/staffdesk/employee-api/internal/infrastructure/queue"
	"github.com/staffdesk/employee-api/pkg/logger"
)

// @title        Employee Directory API
// @version      1.0
// @description  Registration, token-based authentication and capability-gated employee CRUD.
//
// @securityDefinitions.basic  BasicAuth
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("storage", cfg.StorageDriver).Msg("starting employee-api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := api.Dependencies{
		StrictLogin: cfg.Auth.StrictLogin,
		Log:         log,
	}

	var (
		identityRepo ports.IdentityRepository
		employeeRepo ports.EmployeeRepository
		auditRepo    ports.AuditRepository
		denylist     service.TokenDenylist
	)

	switch cfg.StorageDriver {
	case "memory":
		identityRepo = memory.NewIdentityRepository()
		employeeRepo = memory.NewEmployeeRepository()
		auditRepo = memory.NewAuditRepository()
		denylist = memory.NewTokenDenylist()

	default: // mongo
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		identities := mongodb.NewIdentityRepository(db)
		if err := identities.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure identity indexes")
		}
		identityRepo = identities
		employeeRepo = mongodb.NewEmployeeRepository(db)
		auditRepo = mongodb.NewAuditRepository(db)

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		denylist = redisdb.NewTokenDenylist(rdb)

		deps.Mongo = db
		deps.Redis = rdb
	}

	// --- Core services ---
	authService := service.NewAuthService(identityRepo, denylist, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	guard := service.NewGuardService(authService)

	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(ctx)

	employeeService := service.NewEmployeeService(employeeRepo, dispatcher, log)

	deps.AuthService = authService
	deps.Guard = guard
	deps.EmployeeService = employeeService

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
