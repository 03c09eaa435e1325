package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/stylesync/go-backend/internal/cfg"
	v1Http "github.com/stylesync/go-backend/internal/delivery/v1/http"
	"github.com/stylesync/go-backend/internal/infrastructure/kafka"
	minioRepo "github.com/stylesync/go-backend/internal/repository/minio"
	"github.com/stylesync/go-backend/internal/repository/mongodb"
	redisRepo "github.com/stylesync/go-backend/internal/repository/redis"
	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/clients"
	"github.com/stylesync/go-backend/pkg/closer"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const (
	clientInitTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Run monta todas as dependências, sobe o servidor HTTP e espera pelo
// sinal de encerramento.
func Run(cfg *config.Config, log logger.Logger) error {
	shutdownCloser := closer.NewCloser(0)

	mongoCtx, mongoCancel := context.WithTimeout(context.Background(), clientInitTimeout)
	mongoClient, err := clients.NewMongoClient(mongoCtx, cfg.Mongo)
	if err != nil {
		mongoCancel()
		log.Errorf(err, "failed to initialize mongo client")
		return err
	}
	if err := mongoClient.Ping(mongoCtx); err != nil {
		mongoCancel()
		log.Errorf(err, "failed to ping mongo")
		return err
	}
	mongoCancel()
	shutdownCloser.Add(func(ctx context.Context) error {
		return mongoClient.Close(ctx)
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), clientInitTimeout)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		log.Errorf(err, "failed to connect to redis")
		return err
	}
	redisCancel()
	shutdownCloser.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return err
	}
	minioCtx, minioCancel := context.WithTimeout(context.Background(), clientInitTimeout)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	if err := producer.EnsureTopic(clientInitTimeout); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return err
	}
	shutdownCloser.Add(func(_ context.Context) error {
		return producer.Close()
	})

	productRepo := mongodb.NewProductRepo(mongoClient.Database)
	saleRepo := mongodb.NewSaleRepo(mongoClient.Database)
	categoryRepo := mongodb.NewCategoryRepo(mongoClient.Database)
	cacheRepo := redisRepo.NewCacheRepo(redisClient, cfg.Redis, log)
	uploadRepo := minioRepo.NewUploadRepo(minioClient, cfg.Minio)

	authUC := usecase.NewAuthUC(cfg.Auth, log)
	productUC := usecase.NewProductUC(productRepo, cacheRepo, log)
	saleUC := usecase.NewSaleUC(saleRepo, uploadRepo, producer, log)
	categoryUC := usecase.NewCategoryUC(categoryRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(authUC, productUC, saleUC, categoryUC, cfg.Upload)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	shutdownCloser.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := shutdownCloser.Close(shutdownCtx); err != nil {
		log.Warnf("shutdown finished with errors: %v", err)
	} else {
		log.Infof("Application shutdown complete")
	}

	return appErr
}
