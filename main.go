package main

import (
	"errors"
	"log"
	"net/http"

	"cleartrack/src/api"
	"cleartrack/src/api/controllers"
	"cleartrack/src/clients/marketdata"
	"cleartrack/src/config"
	"cleartrack/src/database"
	"cleartrack/src/repositories"
	"cleartrack/src/scheduler"
	"cleartrack/src/services"
	"cleartrack/src/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logger := utils.NewLogger(logrus.InfoLevel, false, "")

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	quoteClient, err := marketdata.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	holdingRepo := repositories.NewHoldingRepository(db)
	snapshotRepo := repositories.NewPriceSnapshotRepository(db)
	historyRepo := repositories.NewPortfolioHistoryRepository(db)

	snapshotService := services.NewSnapshotService(db, holdingRepo, snapshotRepo, historyRepo, quoteClient)

	// Daily snapshot job; manual triggers share the same service
	if _, err := scheduler.NewScheduledTask(cfg.Scheduler.SnapshotCron, func() {
		snapshotService.RunScheduled(logger)
	}); err != nil {
		return nil, err
	}

	controller := controllers.NewController(holdingRepo, historyRepo, quoteClient, snapshotService)
	server := api.NewServer(cfg, controller, logger)
	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	go func() {
		logger.Info("Starting server on port ", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("An error raised while setting up server: ", err)
			errC <- err
		}
	}()
	return errC, nil
}
