// Package memory is an in-process implementation of the same store contract
// the postgres repository fulfills. All mutation of room state funnels
// through one store-owned lock, so capacity checks and status transitions
// are serialized without a database. Used for local development and tests.
package memory

import (
	"sync"

	"session-service/domain"
)

type userRecord struct {
	id           int64
	name         string
	leaderCardID int64
}

type memberRecord struct {
	userID     int64
	token      string
	difficulty domain.LiveDifficulty
	isHost     bool
	result     *domain.PlayResult // nil until the member reports
}

type roomRecord struct {
	roomID     int64
	liveID     int64
	difficulty domain.LiveDifficulty
	status     domain.WaitRoomStatus
	members    []*memberRecord // insertion order
}

type Store struct {
	mu           sync.RWMutex
	nextUserID   int64
	nextRoomID   int64
	usersByToken map[string]*userRecord
	rooms        map[int64]*roomRecord
}

func NewStore() *Store {
	return &Store{
		usersByToken: make(map[string]*userRecord),
		rooms:        make(map[int64]*roomRecord),
	}
}

func (s *Store) Close() error { return nil }
