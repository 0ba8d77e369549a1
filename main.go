package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viukon-cms/config"
	"viukon-cms/handlers"
	"viukon-cms/logging"
	"viukon-cms/middleware"
	"viukon-cms/repositories"
	"viukon-cms/services"

	"github.com/sirupsen/logrus"
)

func openRepository(ctx context.Context, cfg config.StoreConfig) (repositories.SiteDataRepository, error) {
	switch cfg.Driver {
	case config.StoreMongo:
		repo, err := repositories.NewMongoRepository(ctx, repositories.MongoOptions{
			URI:         cfg.MongoURI,
			Database:    cfg.MongoDatabase,
			Collection:  cfg.MongoCollection,
			MaxPoolSize: cfg.MongoMaxPoolSize,
		})
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.StoreSQLite:
		db, err := repositories.OpenSQLite(cfg.SQLitePath, cfg.MaxOpenConns)
		if err != nil {
			return nil, err
		}
		logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Using SQLite database at %s", cfg.SQLitePath)
		return repositories.NewSQLRepository(db), nil
	default:
		logging.Logger.Warnf("Event ID: DB_MEMORY_STORE, Description: Using in-memory store, edits are lost on restart")
		return repositories.NewMemoryRepository(), nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Event ID: CONFIG_ERROR, Description: %v", err)
	}

	if err := logging.InitLogger(logging.Options{
		File:       cfg.Logging.File,
		Level:      cfg.Logging.Level,
		Stdout:     cfg.Logging.Stdout,
		SystemName: "sitedata-service",
	}); err != nil {
		logrus.Fatalf("Event ID: LOGGER_INIT_FAILED, Description: %v", err)
	}
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Site Data Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	repo, err := openRepository(ctx, cfg.Store)
	cancel()
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Opening %s store failed: %v", cfg.Store.Driver, err)
	}

	siteDataService := services.NewSiteDataService(repo)

	routerCfg := handlers.RouterConfig{
		SiteData:   handlers.NewSiteDataHandler(siteDataService),
		Health:     &handlers.HealthHandler{Store: siteDataService},
		Secure:     middleware.NewSecure(middleware.SecureOptions(cfg.Env == "development")),
		CORSOrigin: cfg.Server.CORSOrigin,
		Metrics:    true,
	}

	if cfg.Auth.Required {
		hash, err := cfg.AdminPasswordHash()
		if err != nil {
			logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: %v", err)
		}
		authService := services.NewAuthService(cfg.Auth.AdminUsername, hash, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

		loginLimit, err := middleware.NewIPRateLimiter(cfg.Auth.LoginRate)
		if err != nil {
			logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: Invalid LOGIN_RATE %q: %v", cfg.Auth.LoginRate, err)
		}

		routerCfg.Auth = handlers.NewAuthHandler(authService)
		routerCfg.RequireAuth = middleware.JWTAuthMiddleware(authService)
		routerCfg.LoginRateLimit = loginLimit
	} else {
		logging.Logger.Warnf("Event ID: AUTH_DISABLED, Description: AUTH_REQUIRED is false, site data writes are unauthenticated")
	}

	serverAddress := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      handlers.NewRouter(routerCfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logging.Logger.Info("Event ID: SERVER_SHUTDOWN, Description: Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Errorf("Event ID: SERVER_SHUTDOWN_FAILED, Description: %v", err)
	}
	if err := repo.Close(shutdownCtx); err != nil {
		logging.Logger.Errorf("Event ID: DB_CLOSE_FAILED, Description: %v", err)
	}
	logging.Logger.Info("Event ID: SERVER_STOPPED, Description: Server stopped")
}
