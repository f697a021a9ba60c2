package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/RosoutDiag/internal/broker"
	"github.com/Egor213/RosoutDiag/internal/config"
	brokerctrl "github.com/Egor213/RosoutDiag/internal/controller/broker"
	grpcv1 "github.com/Egor213/RosoutDiag/internal/controller/grpc/v1"
	"github.com/Egor213/RosoutDiag/internal/metrics"
	"github.com/Egor213/RosoutDiag/internal/service"
	errorsUtils "github.com/Egor213/RosoutDiag/pkg/errors"
	"github.com/Egor213/RosoutDiag/pkg/grpcserver"
	"github.com/Egor213/RosoutDiag/pkg/httpserver"
	"github.com/Egor213/RosoutDiag/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Identity
	identity, err := ResolveIdentity(cfg.Node, uuid.New)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	log.WithField("identity", identity).Info("Node identity resolved")

	// Metrics
	counters := metrics.New()

	// Services
	services := service.NewServices(service.ServicesDependencies{
		Identity: identity,
	})

	// Transport
	log.WithFields(log.Fields{
		"transport": cfg.Transport.Kind,
		"input":     cfg.Transport.InputTopic,
		"output":    cfg.Transport.OutputTopic,
	}).Info("Connecting to transport")
	consumer, producer, err := newTransport(cfg, identity)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := broker.NewQueue(producer, cfg.Transport.QueueSize, counters.ReportsDropped)
	queue.Start(ctx)

	handler := brokerctrl.NewRosoutHandler(services.Relay, queue, counters)

	consumerNotify := make(chan error, 1)
	go func() {
		consumerNotify <- consumer.Consume(ctx, handler.Handle)
		close(consumerNotify)
	}()

	// gRPC health server
	log.Infof("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	health := grpcv1.NewHealthController()
	grpcServer, err := grpcserver.New(grpcv1.RegisterServices(health), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	health.SetServing(true)

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-consumerNotify:
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	health.SetServing(false)
	cancel()

	if err := consumer.Close(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	queue.Stop()
	if err := producer.Close(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}

	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	health.Shutdown()
	grpcServer.Shutdown()
}
