package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/broker/kafka"
	"fleet_logistics/internal/config"
	"fleet_logistics/internal/logger"
	"fleet_logistics/internal/middleware"
	"fleet_logistics/internal/routes"
	"fleet_logistics/internal/store"
)

func main() {
	cfg := config.Load()

	// Structured logging to stdout and a rotating file
	accessLog := logger.Setup(cfg.Log)
	gin.SetMode(gin.ReleaseMode)

	// Connect to the database
	db, err := config.OpenDB(cfg.Database, logger.GormLogger())
	if err != nil {
		logrus.WithError(err).Fatal("database startup failed")
	}
	st := store.New(db)
	defer func() {
		if err := st.Close(); err != nil {
			logrus.WithError(err).Warn("closing database")
		}
	}()

	// Change events
	var publisher audit.Publisher = audit.LogPublisher{}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		publisher = audit.NewKafkaPublisher(producer, cfg.Kafka.Topic)
		logrus.WithField("brokers", cfg.Kafka.Brokers).Info("publishing change events to kafka")
	}
	events := audit.NewDispatcher(publisher)

	r := routes.SetupRouter(routes.Deps{
		Repos:     st.Repositories,
		Events:    events,
		DB:        st,
		AccessLog: accessLog,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: middleware.EnableCORS(cfg.Server.AllowedOrigins)(r),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("server running at %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("http server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("http shutdown")
	}
	events.Close()
}
