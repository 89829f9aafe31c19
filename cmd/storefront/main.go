package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/soul/laptopkade/internal/events"
	"github.com/soul/laptopkade/internal/storefront/config"
	"github.com/soul/laptopkade/internal/storefront/httpserver"
	"github.com/soul/laptopkade/internal/storefront/models"
	"github.com/soul/laptopkade/internal/storefront/repo"
	"github.com/soul/laptopkade/internal/storefront/seed"
	"github.com/soul/laptopkade/internal/storefront/session"
	pkgdb "github.com/soul/laptopkade/pkg/db"
	"github.com/soul/laptopkade/pkg/logging"
	loggingmw "github.com/soul/laptopkade/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Laptop{},
		&models.User{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := seed.Run(context.Background(), db, logger); err != nil {
		log.Fatalf("seed: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	store := &repo.GormRepo{DB: db}
	handler := &httpserver.StorefrontHTTP{
		Repo:      store,
		Producer:  producer,
		UploadDir: cfg.UploadDir,
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	renderer, err := httpserver.NewRenderer(cfg.TemplateGlob)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	httpserver.Register(e, &httpserver.Deps{
		Handler:   handler,
		Sessions:  session.NewManager(),
		StaticDir: cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("storefront listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("storefront stopped")
}
