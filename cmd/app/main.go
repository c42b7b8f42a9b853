package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	"ordering/internal/adapters/out/postgres"
	_ "ordering/internal/generated/docs"
	"ordering/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	configs.ConfigureLogger(log.StandardLogger())
	logger := log.WithField("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect database")
	}
	if err = postgres.Migrate(gormDB); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, nil, log.NewEntry(log.StandardLogger()))

	jobManager, err := app.CreateJobManager()
	if err != nil {
		logger.WithError(err).Fatal("failed to create jobs")
	}
	if err = jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("failed to start jobs")
	}
	defer jobManager.StopAll()

	logger.WithField("http_port", configs.HTTPPort).Info("starting ordering service")
	if err = startWebServer(ctx, app, configs); err != nil {
		logger.WithError(err).Error("web server stopped with error")
		return
	}
	logger.Info("ordering service stopped")
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Fatal("Error loading .env file")
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	return config
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(log.GetLevel()))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, app.CreateHTTPServer())

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level log.Level) gommonlog.Lvl {
	switch level {
	case log.TraceLevel, log.DebugLevel:
		return gommonlog.DEBUG
	case log.InfoLevel:
		return gommonlog.INFO
	case log.WarnLevel:
		return gommonlog.WARN
	default:
		return gommonlog.ERROR
	}
}
