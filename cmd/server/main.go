package main // Entry point package

import (
	"context"   // shutdown deadline
	"errors"    // distinguishes a clean server close
	"net/http"  // http.ErrServerClosed
	"os"        // process exit codes
	"os/signal" // SIGINT/SIGTERM handling
	"syscall"   // SIGTERM
	"time"      // shutdown timeout

	"github.com/joho/godotenv"   // loads .env for local runs
	"github.com/sirupsen/logrus" // structured fields

	"github.com/iliyamo/hotel-housekeeping/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-housekeeping/internal/database"   // store connection and schema
	"github.com/iliyamo/hotel-housekeeping/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-housekeeping/internal/logger"     // logrus setup
	"github.com/iliyamo/hotel-housekeeping/internal/middleware" // perimeter auth and rate limiting
	"github.com/iliyamo/hotel-housekeeping/internal/queue"      // cleaning.saved publisher
	"github.com/iliyamo/hotel-housekeeping/internal/repository" // SQL repositories
	"github.com/iliyamo/hotel-housekeeping/internal/router"     // Internal router setup
	"github.com/iliyamo/hotel-housekeeping/internal/service"    // worksheet rules
)

func main() {
	_ = godotenv.Load() // a missing .env is fine; the environment may already be set

	cfg, err := config.Load() // Load environment config
	if err != nil {
		logger.New("info", "text").WithError(err).Error("invalid configuration")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, dialect, err := database.Open(cfg.DB)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.DB.Driver).Fatal("database connection failed")
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Migrate(ctx, db, dialect)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("schema migration failed")
		}
		log.Info("schema up to date")
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil && cfg.RateLimit.Enabled {
		log.Warn("redis unreachable; rate limiting disabled")
	}
	publisher := queue.NewPublisher(cfg.AMQP, log)
	if !publisher.Enabled() {
		log.Info("AMQP_URL not set; cleaning.saved events disabled")
	}

	authn, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		log.WithError(err).Fatal("auth setup failed")
	}

	roomRepo := repository.NewRoomRepo(db, dialect)
	worksheet := service.NewWorksheetService(repository.NewCleaningRepo(db, dialect), roomRepo, publisher, log)
	rooms := service.NewRoomService(repository.NewRoomTypeRepo(db, dialect), roomRepo)

	e := router.New(log)
	router.RegisterRoutes(e, db)
	router.RegisterAPI(e, router.Handlers{
		Cleanings:  handler.NewCleaningHandler(worksheet, log),
		Rooms:      handler.NewRoomHandler(rooms, log),
		Worksheets: handler.NewWorksheetHandler(worksheet, log),
		Auth:       handler.NewAuthHandler(authn, log),
	}, authn.Middleware(), middleware.NewTokenBucket(cfg.RateLimit, rdb, log))

	addr := ":" + cfg.Port
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "driver": dialect}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info("server stopped")
}
