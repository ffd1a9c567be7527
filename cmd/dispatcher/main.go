package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	devicehandler "github.com/pushgate/push-dispatcher/internal/api/handlers/device"
	notifhandler "github.com/pushgate/push-dispatcher/internal/api/handlers/notification"
	"github.com/pushgate/push-dispatcher/internal/api/router"
	"github.com/pushgate/push-dispatcher/internal/api/server"
	"github.com/pushgate/push-dispatcher/internal/audience"
	"github.com/pushgate/push-dispatcher/internal/config"
	"github.com/pushgate/push-dispatcher/internal/dispatch"
	"github.com/pushgate/push-dispatcher/internal/fcm"
	devicerepo "github.com/pushgate/push-dispatcher/internal/repository/device"
	historyrepo "github.com/pushgate/push-dispatcher/internal/repository/history"
	notifrepo "github.com/pushgate/push-dispatcher/internal/repository/notification"
	recipientrepo "github.com/pushgate/push-dispatcher/internal/repository/recipient"
	"github.com/pushgate/push-dispatcher/internal/scheduler"
	devicesvc "github.com/pushgate/push-dispatcher/internal/service/device"
	notifsvc "github.com/pushgate/push-dispatcher/internal/service/notification"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	fcmClient, err := fcm.New(ctx, cfg.FCM.CredentialsFile)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init fcm client")
	}

	notifRepo := notifrepo.NewRepository(db)
	deviceRepo := devicerepo.NewRepository(db)
	historyRepo := historyrepo.NewRepository(db)
	recipientRepo := recipientrepo.NewRepository(db)

	resolver := audience.NewResolver(deviceRepo, recipientRepo)
	dispatcher := dispatch.NewDispatcher(fcmClient, resolver, historyRepo, cfg.Dispatch.Timeout)

	notifService := notifsvc.NewService(notifRepo, historyRepo, dispatcher, recipientRepo, rdb)
	deviceService := devicesvc.NewService(deviceRepo)

	sweeper := scheduler.NewSweeper(notifService, cfg.Scheduler.Interval)
	go sweeper.Run(ctx, cfg.Retry)

	r := router.New(
		notifhandler.NewHandler(notifService, val, cfg),
		devicehandler.NewHandler(deviceService, val),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msgf("failed to close slave DB %d", i)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis")
	}
}
