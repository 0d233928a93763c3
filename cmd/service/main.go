package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XDazaiX/La-Habana-Kitchen/config"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/catalog"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/insights"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/logger"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/producer"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/router"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()
	cfg := config.Load(log)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("failed to load catalog", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", cat.Len()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sink service.OrderSink
	if len(cfg.KafkaBrokers) > 0 {
		kp := producer.NewOrderProducer(cfg.KafkaBrokers, cfg.KafkaTopicOrder)
		defer kp.Close()
		sink = kp
		log.Info("kafka order sink enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopicOrder))
	} else {
		sink = &producer.LogSink{Log: log}
		log.Warn("KAFKA_BROKERS not set, confirmed orders will only be logged")
	}

	store := service.New(cat, sink, time.Duration(cfg.SessionTTLMinutes)*time.Minute, log)
	go store.RunEviction(ctx, 5*time.Minute)

	var metrics *insights.Client
	if cfg.InsightsURL != "" {
		metrics = insights.NewClient(cfg.InsightsURL, time.Duration(cfg.InsightsRefreshSeconds)*time.Second, log)
		go metrics.Run(ctx)
	} else {
		log.Warn("INSIGHTS_URL not set, insights endpoint will report unavailable")
	}

	r := router.Router(store, metrics, log)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting storefront HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down storefront server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("storefront server stopped gracefully")
}
