package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/flash"
	"github.com/iliyamo/venue-booking/internal/handler"
	"github.com/iliyamo/venue-booking/internal/middleware"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/router"
	"github.com/iliyamo/venue-booking/internal/service"
	"github.com/iliyamo/venue-booking/internal/view"
)

func main() {
	cfg := config.Load() // Load environment config

	logger, err := config.NewLogger(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()

	genres := repository.NewGenreRepo(db)
	venues := repository.NewVenueRepo(db, genres)
	artists := repository.NewArtistRepo(db, genres)
	shows := repository.NewShowRepo(db)

	var events service.Publisher = service.NopPublisher{}
	if qc := config.LoadQueueConfig(); qc.Enabled {
		events = service.NewAMQPPublisher(qc.URL, qc.Queue, logger)
		logger.Info("listing events enabled", zap.String("queue", qc.Queue))
	}

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	if rdb == nil {
		logger.Warn("redis unavailable, rate limiting disabled")
	} else {
		defer rdb.Close()
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger)

	store := flash.NewStore(cfg.SessionSecret, cfg.IsProduction())
	renderer, err := view.New(store)
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	h := handler.New(venues, artists, shows, store, events, logger)
	router.RegisterRoutes(e, h, limiter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
