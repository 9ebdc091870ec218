package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/role-membership-service/internal/config"
	"github.com/bagdasarian/role-membership-service/internal/db"
	"github.com/bagdasarian/role-membership-service/internal/directory"
	"github.com/bagdasarian/role-membership-service/internal/handler"
	"github.com/bagdasarian/role-membership-service/internal/handler/server"
	"github.com/bagdasarian/role-membership-service/internal/i18n"
	"github.com/bagdasarian/role-membership-service/internal/logger"
	"github.com/bagdasarian/role-membership-service/internal/repository/postgres"
	"github.com/bagdasarian/role-membership-service/internal/service"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must()
	defer log.Sync()

	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Info("connected to database")
	defer database.Close()

	if err := db.Migrate(database, cfg.MigrationsDir); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}

	roleRepo := postgres.NewRoleRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	directoryClient := directory.NewHTTPClient(
		cfg.Directory.UserBaseURL,
		cfg.Directory.TeamBaseURL,
		cfg.Directory.Timeout,
	)

	roleService := service.NewRoleService(roleRepo, membershipRepo)
	membershipService := service.NewMembershipService(membershipRepo, roleService, directoryClient)
	statsService := service.NewStatsService(statsRepo)

	translator := i18n.NewTranslator()

	h := handler.NewHandler(roleService, membershipService, statsService, translator, cfg.DefaultLocale, log, database)
	srv := server.NewServer(h, cfg.HTTP.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
}
