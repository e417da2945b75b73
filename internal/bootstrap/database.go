package bootstrap

import (
	"go.uber.org/zap"

	"session-service/config"
	"session-service/infra/memory"
	httpUsecase "session-service/internal/api/http/usecase"
	"session-service/internal/initializer"
)

// Store is the union of the two collaborators the core depends on: the
// user directory and the transactional room store.
type Store interface {
	Close() error
	httpUsecase.UserDirectory
	httpUsecase.RoomRepository
}

func InitStore(config config.Config) Store {
	if config.Storage.Backend == "memory" {
		zap.L().Warn("Using in-memory storage; all state is lost on restart")
		return memory.NewStore()
	}
	return initializer.InitDatabase(config)
}
