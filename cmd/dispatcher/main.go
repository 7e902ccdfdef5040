package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"VCS_Link_Checker/internal/dispatcher"
	"VCS_Link_Checker/internal/link-service/metrics"
	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/internal/link-service/repository"
	"VCS_Link_Checker/internal/link-service/service"
	"VCS_Link_Checker/pkg/infra"
	"VCS_Link_Checker/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := dispatcher.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	zapLogger, _ := logger.NewServiceLogger("dispatcher", appConfig.Server.LogLevel, appConfig.Server.LogFile)
	defer zapLogger.Sync()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:         appConfig.Postgres.Host,
		Port:         appConfig.Postgres.Port,
		User:         appConfig.Postgres.User,
		Password:     appConfig.Postgres.Password,
		DBName:       appConfig.Postgres.DBName,
		MaxOpenConns: appConfig.Postgres.MaxOpenConns,
		MaxIdleConns: appConfig.Postgres.MaxIdleConns,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	if err = db.AutoMigrate(&model.Resource{}, &model.LinkCheckResult{}); err != nil {
		zapLogger.Fatal("failed to migrate link checker tables", zap.Error(err))
	}

	// set up metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	resultRepo := repository.NewResultRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	schedulerService := service.NewSchedulerService(resultRepo, appConfig.LinkChecker, appMetrics)

	consumers := make([]dispatcher.CatalogConsumer, appConfig.Kafka.CatalogConsumerCnt)
	for i := 0; i < appConfig.Kafka.CatalogConsumerCnt; i++ {
		consumers[i] = dispatcher.NewCatalogConsumer(resourceRepo, zapLogger, infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.CatalogConsumerGroupID, appConfig.Kafka.CatalogTopic))
		consumers[i].Start()
	}

	d := dispatcher.NewTaskDispatcher(zapLogger, schedulerService, resourceRepo, infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.TaskTopic), appMetrics, appConfig.Dispatch)
	if err = d.Start(); err != nil {
		zapLogger.Fatal("failed to schedule link check dispatch", zap.Error(err))
	}
	zapLogger.Info("dispatcher started", zap.String("schedule", appConfig.Dispatch.Schedule), zap.Int("batch_size", appConfig.Dispatch.BatchSize))

	// metrics endpoint
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.MetricsPort),
		Handler: r,
	}
	go func() {
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Error("failed to start metrics server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down dispatcher...")
	d.Stop()
	for i := 0; i < appConfig.Kafka.CatalogConsumerCnt; i++ {
		consumers[i].Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("metrics server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("dispatcher exiting")
}
