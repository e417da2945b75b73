package initializer

import (
	"fmt"
	"log"
	"time"

	"session-service/config"
	"session-service/infra/session"
)

func InitSessionRedis(appConfig config.Config) *session.Manager {
	address := fmt.Sprintf("%s:%s", appConfig.SessionRedis.Host, appConfig.SessionRedis.Port)
	ttl := time.Duration(appConfig.SessionRedis.TTLMinutes) * time.Minute

	manager, err := session.NewManager(address, appConfig.SessionRedis.Password, appConfig.SessionRedis.DB, ttl)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return manager
}
