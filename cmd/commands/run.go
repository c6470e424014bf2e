package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"snapshare"
	"snapshare/config"
	"snapshare/internal/application/usecase"
	"snapshare/internal/application/worker"
	brokerRepository "snapshare/internal/domain/repository/broker"
	"snapshare/internal/domain/repository/storage"
	"snapshare/internal/infrastructure/broker"
	"snapshare/internal/infrastructure/database"
	"snapshare/internal/infrastructure/gridfs"
	"snapshare/internal/infrastructure/minio"
	"snapshare/internal/presentation"
	"snapshare/internal/presentation/handler"
	"snapshare/internal/presentation/middleware"
	"snapshare/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 argument expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)
	defer logger.Sync()

	logger.Info("running snapshare", "version", snapshare.StringVersion(),
		"backend", cfg.Storage.Backend, "cutoff", cfg.Upload.Cutoff)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("couldn't stop db instance", "err", err)
		}
	}()

	store, err := newBlobStore(cfg, db)
	if err != nil {
		ExitOnError(err)
	}

	dbWriter := database.NewPhotoWriter(db)
	dbRetriever := database.NewPhotoRetriever(db)
	dbLister := database.NewPhotoLister(db)
	dbRemover := database.NewPhotoRemover(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher brokerRepository.Publisher = broker.NopPublisher{}
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)

		processor := worker.NewDimensionProcessor(broker.NewReceiver(brokerClient), dbRetriever,
			database.NewPhotoUpdater(db), store, cfg.Worker)
		go func() {
			if err := processor.Run(ctx); err != nil {
				logger.Error("dimension worker stopped", "err", err)
			}
		}()
	} else {
		logger.Warn("BROKER_URI not set, dimension enrichment disabled")
	}

	address := cfg.Default.PublicAddress
	uploader := usecase.NewUploader(store, dbWriter, publisher, cfg.Upload.CutoffTime,
		address, cfg.Serve.DirectURLs)
	getter := usecase.NewGetter(dbRetriever, store)

	uploadHandler := handler.NewUploadHandler(uploader)
	listHandler := handler.NewListHandler(usecase.NewLister(dbLister, address, cfg.Serve.DirectURLs))
	getHandler := handler.NewGetHandler(getter)
	headHandler := handler.NewHeadHandler(getter)
	deleteHandler := handler.NewDeleteHandler(usecase.NewDeleter(dbRetriever, dbRemover, store))
	inventoryHandler := handler.NewInventoryHandler(usecase.NewInventory(store))

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency, "ip", v.RemoteIP, "request_id", v.RequestID, "err", v.Error)

			return nil
		},
	}))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: []string{
			echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength,
			presentation.ImageWidthKey, presentation.ImageHeightKey,
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTP.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTP.RateLimit))))

	e.GET("/health", handler.HandleHealth)

	api := e.Group("/api")
	api.POST("/upload", uploadHandler.HandleUpload)
	api.GET("/list", listHandler.HandleList)
	api.GET(fmt.Sprintf("/photos/:%s/file", presentation.IDParam), getHandler.HandleGet)
	api.HEAD(fmt.Sprintf("/photos/:%s/file", presentation.IDParam), headHandler.HandleHead)

	admin := middleware.AdminAuthMiddleware(cfg.Admin)
	api.DELETE(fmt.Sprintf("/photos/:%s", presentation.IDParam), deleteHandler.HandleDelete, admin)
	api.GET("/admin/blobs", inventoryHandler.HandleInventory, admin)

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

func newBlobStore(cfg *config.Config, db *database.Database) (storage.BlobStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendGridFS:
		return gridfs.NewStore(db.Client.Database(db.DBName), cfg.GridFS), nil
	default:
		client, err := minio.New(cfg.MinIOClient)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.EnsureBucket(ctx, cfg.MinIOUploader.Bucket); err != nil {
			return nil, fmt.Errorf("ensure bucket %s: %w", cfg.MinIOUploader.Bucket, err)
		}

		return minio.NewStore(client, cfg.MinIOUploader), nil
	}
}
