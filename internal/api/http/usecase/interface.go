package httpUsecase

import (
	"context"

	"session-service/domain"
)

// UserDirectory resolves opaque tokens to user identities. The room core
// only ever reads from it.
type UserDirectory interface {
	CreateUser(ctx context.Context, name, token string, leaderCardID int64) (int64, error)
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
	UpdateUser(ctx context.Context, token, name string, leaderCardID int64) error
}

// RoomRepository is the transactional room store. Implementations must make
// every capacity-check-and-mutate sequence on one room atomic with respect
// to concurrent callers (postgres: row lock; memory: store lock).
type RoomRepository interface {
	CreateRoom(ctx context.Context, liveID int64, difficulty domain.LiveDifficulty, userID int64, token string) (int64, error)
	ListRooms(ctx context.Context, liveID int64) ([]domain.RoomInfo, error)
	JoinRoom(ctx context.Context, roomID int64, difficulty domain.LiveDifficulty, userID int64, token string) (domain.JoinRoomResult, error)
	WaitRoom(ctx context.Context, roomID int64, token string) (domain.WaitRoomStatus, []domain.RoomUser, error)
	StartRoom(ctx context.Context, roomID int64, token string) error
	StoreResult(ctx context.Context, roomID int64, token string, result domain.PlayResult) error
	RoomResult(ctx context.Context, roomID int64) ([]domain.ResultUser, error)
	LeaveRoom(ctx context.Context, roomID int64, token string) (removed, dissolved bool, err error)
}

// SessionManager caches token -> user lookups.
type SessionManager interface {
	GetUser(ctx context.Context, token string) (*domain.User, error)
	CacheUser(ctx context.Context, token string, user *domain.User) error
	InvalidateUser(ctx context.Context, token string) error
}

// EventPublisher emits room lifecycle events. Publication is best-effort
// and must not fail the request.
type EventPublisher interface {
	PublishRoomEvent(ctx context.Context, roomID int64, eventType string, data interface{})
}
