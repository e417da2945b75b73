package memory

import (
	"context"
	"fmt"

	"session-service/domain"
)

func (s *Store) CreateRoom(_ context.Context, liveID int64, difficulty domain.LiveDifficulty, userID int64, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRoomID++
	s.rooms[s.nextRoomID] = &roomRecord{
		roomID:     s.nextRoomID,
		liveID:     liveID,
		difficulty: difficulty,
		status:     domain.StatusWaiting,
		members: []*memberRecord{{
			userID:     userID,
			token:      token,
			difficulty: difficulty,
			isHost:     true,
		}},
	}
	return s.nextRoomID, nil
}

func (s *Store) ListRooms(_ context.Context, liveID int64) ([]domain.RoomInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := []domain.RoomInfo{}
	// map order is random; return ascending room ids like the SQL store
	for id := int64(1); id <= s.nextRoomID; id++ {
		room, ok := s.rooms[id]
		if !ok {
			continue
		}
		if liveID != 0 && room.liveID != liveID {
			continue
		}
		rooms = append(rooms, domain.RoomInfo{
			RoomID:          room.roomID,
			LiveID:          room.liveID,
			JoinedUserCount: len(room.members),
			MaxUserCount:    domain.MaxRoomMembers,
		})
	}
	return rooms, nil
}

func (s *Store) JoinRoom(_ context.Context, roomID int64, difficulty domain.LiveDifficulty, userID int64, token string) (domain.JoinRoomResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok || room.difficulty != difficulty || room.status == domain.StatusDissolution {
		return domain.JoinDisbanded, nil
	}
	// membership is keyed by (room, user): rejoining is an idempotent ack,
	// never a second roster entry
	if room.member(token) != nil {
		return domain.JoinOk, nil
	}
	if len(room.members) >= domain.MaxRoomMembers {
		return domain.JoinRoomFull, nil
	}
	room.members = append(room.members, &memberRecord{
		userID:     userID,
		token:      token,
		difficulty: difficulty,
	})
	return domain.JoinOk, nil
}

func (s *Store) WaitRoom(_ context.Context, roomID int64, token string) (domain.WaitRoomStatus, []domain.RoomUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return domain.StatusDissolution, []domain.RoomUser{}, nil
	}
	roster := make([]domain.RoomUser, 0, len(room.members))
	for _, m := range room.members {
		ru := domain.RoomUser{
			UserID:           m.userID,
			SelectDifficulty: m.difficulty,
			IsMe:             m.token == token,
			IsHost:           m.isHost,
		}
		if user, ok := s.usersByToken[m.token]; ok {
			ru.Name = user.name
			ru.LeaderCardID = user.leaderCardID
		}
		roster = append(roster, ru)
	}
	return room.status, roster, nil
}

func (s *Store) StartRoom(_ context.Context, roomID int64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok || room.status == domain.StatusDissolution {
		return fmt.Errorf("%w: room not found", domain.ErrNotFound)
	}
	member := room.member(token)
	if member == nil {
		return fmt.Errorf("%w: caller is not a member of the room", domain.ErrForbidden)
	}
	if !member.isHost {
		return fmt.Errorf("%w: only the host may start the live", domain.ErrForbidden)
	}
	room.status = domain.StatusLiveStart
	return nil
}

func (s *Store) StoreResult(_ context.Context, roomID int64, token string, result domain.PlayResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return fmt.Errorf("%w: room not found", domain.ErrNotFound)
	}
	member := room.member(token)
	if member == nil {
		return fmt.Errorf("%w: caller is not a member of the room", domain.ErrNotFound)
	}
	member.result = &domain.PlayResult{
		JudgeCountList: domain.PadJudgeCounts(result.JudgeCountList),
		Score:          result.Score,
	}
	return nil
}

func (s *Store) RoomResult(_ context.Context, roomID int64) ([]domain.ResultUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return []domain.ResultUser{}, nil
	}
	results := make([]domain.ResultUser, 0, len(room.members))
	for _, m := range room.members {
		if m.result == nil {
			return []domain.ResultUser{}, nil
		}
		results = append(results, domain.ResultUser{
			UserID:         m.userID,
			JudgeCountList: append([]int(nil), m.result.JudgeCountList...),
			Score:          m.result.Score,
		})
	}
	return results, nil
}

func (s *Store) LeaveRoom(_ context.Context, roomID int64, token string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return false, false, nil
	}
	idx := -1
	for i, m := range room.members {
		if m.token == token {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, false, nil
	}
	wasHost := room.members[idx].isHost
	room.members = append(room.members[:idx], room.members[idx+1:]...)
	switch {
	case len(room.members) == 0:
		delete(s.rooms, roomID)
		return true, true, nil
	case wasHost:
		room.status = domain.StatusDissolution
		return true, true, nil
	}
	return true, false, nil
}

func (r *roomRecord) member(token string) *memberRecord {
	for _, m := range r.members {
		if m.token == token {
			return m
		}
	}
	return nil
}
