package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rosterhq/tournament-roster/internal/config"
	"github.com/rosterhq/tournament-roster/internal/db"
	"github.com/rosterhq/tournament-roster/internal/handler"
	"github.com/rosterhq/tournament-roster/internal/handler/server"
	"github.com/rosterhq/tournament-roster/internal/logger"
	"github.com/rosterhq/tournament-roster/internal/repository/postgres"
	"github.com/rosterhq/tournament-roster/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Development)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("application stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	database, err := db.NewPostgres(cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	log.Info("successfully connected to database", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	uow := postgres.NewUnitOfWork(database, cfg.Database.OpTimeout)
	tournamentRepo := postgres.NewTournamentRepository(database)
	statsRepo := postgres.NewStatsRepository(database)
	userRepo := postgres.NewUserRepository(database)

	policy := service.DefaultPolicy()
	policy.RosterCap = cfg.Roster.Cap
	policy.CheckInClosesMinutesFromStart = cfg.Roster.CheckInClosesMinutesFromStart

	rosterService := service.NewRosterService(uow, policy, time.Now, log)
	checkInService := service.NewCheckInService(uow, policy, time.Now, log)
	seedingService := service.NewSeedingService(uow, log)
	statsService := service.NewStatsService(tournamentRepo, statsRepo, cfg.Roster.Cap, log)
	userService := service.NewUserService(userRepo, log)

	h := handler.NewHandler(rosterService, checkInService, seedingService, statsService, userService, database, log)
	router := server.NewRouter(h, server.RouterConfig{
		JWTSecret:      []byte(cfg.Auth.JWTSecret),
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}, log)
	srv := server.NewServer(router, cfg.HTTP.Addr, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
