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

	"VCS_Link_Checker/internal/link-service/api/handler"
	"VCS_Link_Checker/internal/link-service/api/routes"
	"VCS_Link_Checker/internal/link-service/config"
	"VCS_Link_Checker/internal/link-service/metrics"
	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/internal/link-service/repository"
	"VCS_Link_Checker/internal/link-service/service"
	"VCS_Link_Checker/internal/link-service/verdict"
	"VCS_Link_Checker/pkg/infra"
	"VCS_Link_Checker/pkg/logger"
	"VCS_Link_Checker/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	zapLogger, _ := logger.NewServiceLogger("link-service", appConfig.Server.LogLevel, appConfig.Server.LogFile)
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

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:        appConfig.Redis.Host,
		Port:        appConfig.Redis.Port,
		Password:    appConfig.Redis.Password,
		DB:          appConfig.Redis.DB,
		PingRetries: appConfig.Redis.PingRetries,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// set up dependencies
	policy := verdict.Policy{
		MinFails: appConfig.LinkChecker.BrokenResourceMinFails,
		MinAge:   appConfig.LinkChecker.BrokenResourceMinAge(),
	}
	resultRepo := repository.NewResultRepository(db)
	datasetRepo := repository.NewCachedDatasetRepository(
		redisClient,
		repository.NewDatasetRepository(esClient, appConfig.Elasticsearch.DatasetIndex, appConfig.Elasticsearch.OrganizationIndex),
		appConfig.Redis.CacheTTL,
	)
	schedulerService := service.NewSchedulerService(resultRepo, appConfig.LinkChecker, appMetrics)
	resultService := service.NewResultService(resultRepo, policy, appMetrics)
	reportService := service.NewReportService(resultRepo, datasetRepo, policy, appConfig.Site)
	linkCheckerHandler := handler.NewLinkCheckerHandler(
		handler.NewLogger(zapLogger),
		schedulerService,
		resultService,
		reportService,
		appConfig.LinkChecker.DefaultResourcesToCheck,
	)

	m := middleware.NewAuthMiddleware(appConfig.Auth.JWTSecret, appConfig.Auth.AuthorizedUsers)

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddLinkCheckerRoutes(r, linkCheckerHandler, m)
	routes.AddOperationalRoutes(r, linkCheckerHandler, registry)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
