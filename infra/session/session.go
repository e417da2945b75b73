package session

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"session-service/domain"
)

// Manager is a read-through cache of token -> user in front of the user
// directory. A miss is not an error; callers fall back to the store.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewManager(redisAddr string, password string, db int, ttl time.Duration) (*Manager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Println("Connected to Redis successfully")
	return &Manager{client: client, ttl: ttl}, nil
}

func (m *Manager) GetRedisClient() *redis.Client {
	return m.client
}

func (m *Manager) Close() error {
	return m.client.Close()
}

// GetUser returns the cached user for the token, or (nil, nil) on a miss.
func (m *Manager) GetUser(ctx context.Context, token string) (*domain.User, error) {
	data, err := m.client.Get(ctx, sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Manager) CacheUser(ctx context.Context, token string, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, sessionKey(token), data, m.ttl).Err()
}

func (m *Manager) InvalidateUser(ctx context.Context, token string) error {
	return m.client.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return "session:" + token
}
