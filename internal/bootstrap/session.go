package bootstrap

import (
	"session-service/config"
	httpUsecase "session-service/internal/api/http/usecase"
	"session-service/internal/initializer"
)

type SessionManager interface {
	Close() error
	httpUsecase.SessionManager
}

func InitSessionRedis(config config.Config) SessionManager {
	return initializer.InitSessionRedis(config)
}
