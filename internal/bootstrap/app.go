package bootstrap

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"session-service/config"
	"session-service/internal/server"
	"session-service/pkg/graceful"
)

type App struct {
	config         config.Config
	store          Store
	sessionManager SessionManager
	events         EventPublisher
	fiberApp       *fiber.App
	httpHandlers   map[string]interface{}
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.store = InitStore(a.config)
	a.sessionManager = InitSessionRedis(a.config)
	a.events = SetupMessaging(a.config)
	a.httpHandlers = SetupHTTPHandlers(a.store, a.sessionManager, a.events)
	a.fiberApp = SetupServer(a.config, a.httpHandlers)
}

func (a *App) Start() {
	go func() {
		if err := server.Start(a.fiberApp, a.config.Server.Port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer func() {
		if err := a.store.Close(); err != nil {
			zap.L().Error("Failed to close store", zap.Error(err))
		}
		if a.sessionManager != nil {
			if err := a.sessionManager.Close(); err != nil {
				zap.L().Error("Failed to close session manager", zap.Error(err))
			}
		}
		if a.events != nil {
			if err := a.events.Close(); err != nil {
				zap.L().Error("Failed to close event publisher", zap.Error(err))
			}
		}
	}()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())
}
