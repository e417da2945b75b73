package memory

import (
	"context"

	"session-service/domain"
)

func (s *Store) CreateUser(_ context.Context, name, token string, leaderCardID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	s.usersByToken[token] = &userRecord{
		id:           s.nextUserID,
		name:         name,
		leaderCardID: leaderCardID,
	}
	return s.nextUserID, nil
}

func (s *Store) GetUserByToken(_ context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.usersByToken[token]
	if !ok {
		return nil, domain.ErrUnknownToken
	}
	return &domain.User{ID: rec.id, Name: rec.name, LeaderCardID: rec.leaderCardID}, nil
}

func (s *Store) UpdateUser(_ context.Context, token, name string, leaderCardID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.usersByToken[token]
	if !ok {
		return domain.ErrUnknownToken
	}
	rec.name = name
	rec.leaderCardID = leaderCardID
	return nil
}
