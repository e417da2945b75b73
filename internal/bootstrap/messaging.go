package bootstrap

import (
	"session-service/config"
	httpUsecase "session-service/internal/api/http/usecase"
	"session-service/internal/initializer"
)

type EventPublisher interface {
	Close() error
	httpUsecase.EventPublisher
}

func SetupMessaging(config config.Config) EventPublisher {
	return initializer.InitMessaging(config)
}
