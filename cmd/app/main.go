// Command app runs the Journey API: missions, Spirit XP, raffles and the leaderboard.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/journey-app/journey/internal/activity"
	"github.com/journey-app/journey/internal/audit"
	"github.com/journey-app/journey/internal/bootstrap"
	"github.com/journey-app/journey/internal/config"
	"github.com/journey-app/journey/internal/database"
	"github.com/journey-app/journey/internal/economy"
	"github.com/journey-app/journey/internal/leaderboard"
	"github.com/journey-app/journey/internal/middleware"
	"github.com/journey-app/journey/internal/mission"
	"github.com/journey-app/journey/internal/raffle"
	"github.com/journey-app/journey/internal/resetwindow"
	"github.com/journey-app/journey/internal/server"
	"github.com/journey-app/journey/internal/telemetry"
	"github.com/journey-app/journey/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() (runErr error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Filled in as components come up; every return below releases whatever is set
	var components bootstrap.ShutdownComponents
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, components)
	}()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:        cfg.OTELEnabled,
		Endpoint:       cfg.OTELEndpoint,
		Insecure:       cfg.OTELInsecure,
		SampleRatio:    cfg.OTELSampleRatio,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
	})
	if err != nil {
		return err
	}
	components.Telemetry = shutdownTracing

	loc, err := resetwindow.LoadLocation(cfg.MissionTimezone)
	if err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	components.DB = dbPool
	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			return err
		}
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	components.Events = events
	if err := bootstrap.RegisterEventHandlers(cfg, events); err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	board := leaderboard.NewStore(repos.Leaderboard, cfg.LeaderboardSize)
	components.Leaderboard = board
	economySvc := economy.NewService(repos.Ledger)
	activitySvc := activity.NewService(repos.Activity, events.Publisher)
	missionSvc := mission.NewService(
		repos.Mission,
		mission.NewAggregator(repos.Activity, cfg.MissionMaxConcurrentReads),
		economySvc,
		resetwindow.NewCalculator(loc),
		events.Publisher,
		board,
		cfg.MissionCatalogTTL,
	)

	// Must stay a nil interface when auditing is off
	var auditor raffle.Auditor
	if cfg.AuditEnabled() {
		s3Auditor, err := audit.NewS3Auditor(ctx, audit.Config{
			Bucket:    cfg.AuditS3Bucket,
			Region:    cfg.AuditS3Region,
			Endpoint:  cfg.AuditS3Endpoint,
			AccessKey: cfg.AuditS3AccessKey,
			SecretKey: cfg.AuditS3SecretKey,
		})
		if err != nil {
			return err
		}
		auditor = s3Auditor
	}
	raffleSvc := raffle.NewService(repos.Raffle, events.Publisher, auditor)

	scheduler, err := worker.NewScheduler(worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize, worker.DefaultJobTimeout))
	if err != nil {
		return err
	}
	if err := scheduler.Every(cfg.RaffleAutoDrawInterval, worker.NewAutoDrawJob(raffleSvc)); err != nil {
		return err
	}
	if err := scheduler.Every(cfg.LeaderboardRefreshInterval, worker.NewLeaderboardRefreshJob(board)); err != nil {
		return err
	}

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		MaxRequestBytes: cfg.MaxRequestBytes,
		TrustedProxies:  cfg.TrustedProxies,
		ServiceName:     cfg.ServiceName,
	}, dbPool, middleware.NewAuthenticator(cfg.JWTSecret), server.Services{
		Missions:    missionSvc,
		Raffles:     raffleSvc,
		Activity:    activitySvc,
		Economy:     economySvc,
		Leaderboard: board,
	})

	scheduler.Start()
	components.Scheduler = scheduler

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()
	components.Server = srv

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case runErr = <-serverErr:
	}

	return runErr
}
