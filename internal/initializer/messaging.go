package initializer

import (
	"log"

	"session-service/config"
	"session-service/infra/messaging"
)

func InitMessaging(appConfig config.Config) *messaging.KafkaPublisher {
	publisher := messaging.NewKafkaPublisher(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
	log.Printf("Kafka publisher initialized, topic: %s", appConfig.Kafka.Topic)
	return publisher
}
