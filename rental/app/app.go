package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rentacar/rental-service/pkg/kafka"
	"github.com/rentacar/rental-service/pkg/logger"
	"github.com/rentacar/rental-service/pkg/postgres"
	"github.com/rentacar/rental-service/rental/config"
	"github.com/rentacar/rental-service/rental/internal/handler"
	"github.com/rentacar/rental-service/rental/internal/repository"
	"github.com/rentacar/rental-service/rental/internal/server"
	"github.com/rentacar/rental-service/rental/internal/service"
	"github.com/rentacar/rental-service/rental/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo rentals %v", err)
	}
	svc := service.NewService(repo, log)

	var events handler.EventLog
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
		defer producer.Close()
		events = handler.NewEventLog(producer, cfg.Kafka.Topic)
	}

	h := handler.New(svc, events, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
