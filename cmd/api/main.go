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

	"github.com/soul/laptopkade/internal/api/config"
	"github.com/soul/laptopkade/internal/api/httpserver"
	apijwt "github.com/soul/laptopkade/internal/api/jwt"
	"github.com/soul/laptopkade/internal/api/models"
	"github.com/soul/laptopkade/internal/api/repo"
	"github.com/soul/laptopkade/internal/api/service"
	"github.com/soul/laptopkade/internal/events"
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
		&models.Token{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	store := &repo.GormRepo{DB: db}
	provider := &apijwt.Provider{
		Secret:     []byte(cfg.JWTSecret),
		Expiration: cfg.JWTExpiration,
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Auth: &httpserver.AuthHTTP{
			Svc:      &service.AuthService{Repo: store, Provider: provider},
			Producer: producer,
		},
		Laptops: &httpserver.LaptopHTTP{
			Svc:      &service.LaptopService{Repo: store},
			Producer: producer,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("api listening on %s", srv.Addr)
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

	log.Println("api stopped")
}
