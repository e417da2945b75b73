package messaging

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Room event types published to the room-events topic.
const (
	MSG_ROOM_CREATED    = "room_created"
	MSG_PLAYER_JOINED   = "player_joined"
	MSG_PLAYER_LEFT     = "player_left"
	MSG_LIVE_STARTED    = "live_started"
	MSG_RESULT_REPORTED = "result_reported"
	MSG_ROOM_DISSOLVED  = "room_dissolved"
)

// RoomEvent is the JSON envelope written to Kafka. Keying by room id keeps
// one room's events in partition order.
type RoomEvent struct {
	Type      string      `json:"type"`
	RoomID    int64       `json:"room_id"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// PublishRoomEvent is fire-and-forget: a broker outage must never fail the
// caller's request, so errors are logged and dropped.
func (p *KafkaPublisher) PublishRoomEvent(ctx context.Context, roomID int64, eventType string, data interface{}) {
	event := RoomEvent{
		Type:      eventType,
		RoomID:    roomID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Failed to marshal room event", zap.Error(err))
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(roomID, 10)),
		Value: payload,
	})
	if err != nil {
		zap.L().Error("Failed to publish room event",
			zap.String("type", eventType),
			zap.Int64("room_id", roomID),
			zap.Error(err))
	}
}
