package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	petchart "github.com/CSCI4830-UNO/PetChart"
	"github.com/CSCI4830-UNO/PetChart/config"
	"github.com/CSCI4830-UNO/PetChart/internal/application/usecase"
	"github.com/CSCI4830-UNO/PetChart/internal/infrastructure/database"
	"github.com/CSCI4830-UNO/PetChart/internal/infrastructure/minio"
	"github.com/CSCI4830-UNO/PetChart/internal/infrastructure/redis"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation/handler"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation/middleware"
	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running petchart attachment service", "version", petchart.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	minioClient, err := minio.New(cfg.MinIOClient, cfg.BlobStore.Bucket)
	if err != nil {
		ExitOnError(err)
	}
	blobStore := minio.NewBlobStore(minioClient.MinioClient, cfg.BlobStore)

	redisClient, err := redis.NewClient(cfg.RedisConfig)
	if err != nil {
		ExitOnError(err)
	}
	sessions := redis.NewSessionStore(redisClient)

	uploader := usecase.NewUploader(blobStore, blobStore, cfg.HTTP.PublicURL, cfg.Upload.MaxBytes)
	if prefix := cfg.Upload.AllowedTypePrefix; prefix != "" {
		uploader.SetTypePredicate(func(contentType string) bool {
			return strings.HasPrefix(contentType, prefix)
		})
	}
	streamer := usecase.NewStreamer(blobStore)
	photoManager := usecase.NewPhotoManager(database.NewPetRepo(db), blobStore)

	uploadHandler := handler.NewUploadHandler(uploader)
	getHandler := handler.NewGetHandler(streamer)
	photosHandler := handler.NewPhotosHandler(photoManager)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("10M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	// Downloads are public: blobs are immutable and the ids are unguessable.
	e.GET(fmt.Sprintf("/api/images/:%s", presentation.IDParam), getHandler.HandleGet)
	e.HEAD(fmt.Sprintf("/api/images/:%s", presentation.IDParam), getHandler.HandleHead)

	session := middleware.SessionMiddleware([]byte(cfg.SessionSecret), sessions)
	e.POST("/api/images/upload", uploadHandler.Handle, session)
	e.GET(fmt.Sprintf("/api/pets/:%s/photos", presentation.IDParam), photosHandler.HandleList, session)
	e.PUT(fmt.Sprintf("/api/pets/:%s/photos", presentation.IDParam), photosHandler.HandleReplace, session)
	e.DELETE(fmt.Sprintf("/api/pets/:%s", presentation.IDParam), photosHandler.HandleDeletePet, session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("couldn't close redis client", "err", err.Error())
	}
	if err := db.Stop(); err != nil {
		logger.Error("couldn't stop db instance", "err", err.Error())
	}
}
