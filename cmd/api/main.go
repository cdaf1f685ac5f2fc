package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldbook/internal/config"
	"fieldbook/internal/database"
	"fieldbook/internal/repository/postgres"
	"fieldbook/internal/router"
	"fieldbook/internal/service"
	"fieldbook/pkg/logger"
)

func main() {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// db
	ctx := context.Background()
	pool, err := database.Open(ctx, cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		l.Fatal().Err(err).Msg("migrate failed")
	}

	// optional admin seed
	authSvc := service.NewAuthService(postgres.NewUserRepo(pool), cfg.SessionSecret)
	if err := authSvc.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		l.Fatal().Err(err).Msg("admin seed failed")
	}
	if cfg.AdminEmail != "" {
		l.Info().Str("email", cfg.AdminEmail).Msg("admin user ensured")
	}

	// http
	r := router.New(l, pool, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	l.Info().Msg("shutdown complete")
}
