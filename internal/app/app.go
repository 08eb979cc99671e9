package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/bookmarks/internal/config"
	"github.com/fsdevblog/bookmarks/internal/controllers"
	"github.com/fsdevblog/bookmarks/internal/db"
	"github.com/fsdevblog/bookmarks/internal/logs"
	"github.com/fsdevblog/bookmarks/internal/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(config config.Config) (*App, error) {
	dbServices, servicesErr := initServices(config)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     config,
		dbServices: dbServices,
		Logger:     config.Logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и блокируется до сигнала остановки.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := controllers.SetupRouter(controllers.RouterParams{
		UserService:     a.dbServices.UserService,
		BookmarkService: a.dbServices.BookmarkService,
		PingService:     a.dbServices.PingService,
		AppConf:         a.config,
		AccessLog:       logs.MustNew(),
	})

	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		a.Logger.WithError(shutdownErr).Error("server shutdown error")
	}

	return serverErr
}

// initServices создает подключение к базе данных и возвращает сервисный слой приложения.
func initServices(appConf config.Config) (*services.Services, error) {
	conn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  whatIsDBStorageType(&appConf),
		PostgresDSN:  &appConf.DatabaseDSN,
		SQLiteDBPath: &appConf.SQLitePath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	return services.Factory(conn, appConf.Logger), nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	if appConf.DatabaseDSN != "" {
		return db.StorageTypePostgres
	}
	return db.StorageTypeSQLite
}
