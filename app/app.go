package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/config"
	"github.com/flotilla-app/fleet-service/internal/handler"
	"github.com/flotilla-app/fleet-service/internal/repository"
	"github.com/flotilla-app/fleet-service/internal/server"
	"github.com/flotilla-app/fleet-service/internal/service"
	"github.com/flotilla-app/fleet-service/internal/telemetry"
	"github.com/flotilla-app/fleet-service/migrations"
	"github.com/flotilla-app/fleet-service/pkg/kafka"
	"github.com/flotilla-app/fleet-service/pkg/logger"
	"github.com/flotilla-app/fleet-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "fleet")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	var events service.Publisher
	var producerClose func() error
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
		pub := kafka.NewPublisher(producer)
		events = pub
		producerClose = pub.Close
	}

	svc := service.NewService(repo, events, log)
	if cfg.Telemetry.BaseURL != "" {
		svc.SetPositionFeed(telemetry.NewClient(cfg.Telemetry, log))
	}
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if producerClose != nil {
		_ = producerClose()
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
