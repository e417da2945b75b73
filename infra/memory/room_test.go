package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"session-service/domain"
)

func newStoreWithUsers(t *testing.T, n int) (*Store, []string) {
	t.Helper()
	s := NewStore()
	ctx := context.Background()
	tokens := make([]string, n)
	for i := 0; i < n; i++ {
		tokens[i] = fmt.Sprintf("token-%d", i)
		if _, err := s.CreateUser(ctx, fmt.Sprintf("player%d", i), tokens[i], int64(100+i)); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
	}
	return s, tokens
}

func TestCreateRoomSetsHost(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 1)
	ctx := context.Background()

	roomID, err := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	status, roster, err := s.WaitRoom(ctx, roomID, tokens[0])
	if err != nil {
		t.Fatalf("WaitRoom: %v", err)
	}
	if status != domain.StatusWaiting {
		t.Errorf("status = %v, want Waiting", status)
	}
	if len(roster) != 1 {
		t.Fatalf("roster size = %d, want 1", len(roster))
	}
	if !roster[0].IsHost || !roster[0].IsMe {
		t.Errorf("creator roster entry = %+v, want host and me", roster[0])
	}
}

func TestJoinRoomCapacity(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 6)
	ctx := context.Background()

	roomID, err := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	for i := 1; i < domain.MaxRoomMembers; i++ {
		result, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, int64(i+1), tokens[i])
		if err != nil {
			t.Fatalf("JoinRoom #%d: %v", i, err)
		}
		if result != domain.JoinOk {
			t.Fatalf("JoinRoom #%d = %v, want Ok", i, result)
		}
	}

	result, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 5, tokens[4])
	if err != nil {
		t.Fatalf("JoinRoom overflow: %v", err)
	}
	if result != domain.JoinRoomFull {
		t.Errorf("join on full room = %v, want RoomFull", result)
	}
}

func TestJoinRoomAlreadyMember(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 2)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	if _, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 2, tokens[1]); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	// rejoining acks without a second roster entry
	result, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 2, tokens[1])
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if result != domain.JoinOk {
		t.Errorf("rejoin = %v, want Ok", result)
	}

	_, roster, err := s.WaitRoom(ctx, roomID, tokens[1])
	if err != nil {
		t.Fatalf("WaitRoom: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("roster size = %d, want 2", len(roster))
	}
	seen := map[int64]int{}
	for _, ru := range roster {
		seen[ru.UserID]++
	}
	if seen[2] != 1 {
		t.Errorf("user 2 appears %d times in roster, want 1", seen[2])
	}

	rooms, _ := s.ListRooms(ctx, 10)
	if rooms[0].JoinedUserCount != 2 {
		t.Errorf("joined_user_count = %d, want 2", rooms[0].JoinedUserCount)
	}
}

func TestJoinRoomAlreadyMemberOfFullRoom(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 4)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	for i := 1; i < domain.MaxRoomMembers; i++ {
		if _, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, int64(i+1), tokens[i]); err != nil {
			t.Fatalf("JoinRoom #%d: %v", i, err)
		}
	}

	result, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 2, tokens[1])
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if result != domain.JoinOk {
		t.Errorf("member rejoining a full room = %v, want Ok", result)
	}
}

func TestJoinRoomConcurrentNeverOverfills(t *testing.T) {
	const attempts = 32
	s, tokens := newStoreWithUsers(t, attempts+1)
	ctx := context.Background()

	roomID, err := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		okCount int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, int64(i+2), tokens[i+1])
			if err != nil {
				t.Errorf("JoinRoom: %v", err)
				return
			}
			if result == domain.JoinOk {
				mu.Lock()
				okCount++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if want := domain.MaxRoomMembers - 1; okCount != want {
		t.Errorf("concurrent joins admitted %d, want %d", okCount, want)
	}
	_, roster, err := s.WaitRoom(ctx, roomID, tokens[0])
	if err != nil {
		t.Fatalf("WaitRoom: %v", err)
	}
	if len(roster) != domain.MaxRoomMembers {
		t.Errorf("final roster size = %d, want %d", len(roster), domain.MaxRoomMembers)
	}
}

func TestJoinRoomDisbanded(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 2)
	ctx := context.Background()

	result, err := s.JoinRoom(ctx, 999, domain.DifficultyNormal, 2, tokens[1])
	if err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	if result != domain.JoinDisbanded {
		t.Errorf("join on missing room = %v, want Disbanded", result)
	}

	status, _, err := s.WaitRoom(ctx, 999, tokens[1])
	if err != nil {
		t.Fatalf("WaitRoom: %v", err)
	}
	if status != domain.StatusDissolution {
		t.Errorf("wait on missing room = %v, want Dissolution", status)
	}
}

func TestJoinRoomWrongDifficulty(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 2)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	result, err := s.JoinRoom(ctx, roomID, domain.DifficultyHard, 2, tokens[1])
	if err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	if result != domain.JoinDisbanded {
		t.Errorf("join with other difficulty = %v, want Disbanded", result)
	}
}

func TestStartRoomHostOnly(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 2)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	if _, err := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 2, tokens[1]); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	err := s.StartRoom(ctx, roomID, tokens[1])
	if !isForbidden(err) {
		t.Errorf("non-host start error = %v, want ErrForbidden", err)
	}
	status, _, _ := s.WaitRoom(ctx, roomID, tokens[0])
	if status != domain.StatusWaiting {
		t.Errorf("status after rejected start = %v, want Waiting", status)
	}

	if err := s.StartRoom(ctx, roomID, tokens[0]); err != nil {
		t.Fatalf("host start: %v", err)
	}
	status, _, _ = s.WaitRoom(ctx, roomID, tokens[0])
	if status != domain.StatusLiveStart {
		t.Errorf("status after start = %v, want LiveStart", status)
	}

	// starting again is an idempotent success
	if err := s.StartRoom(ctx, roomID, tokens[0]); err != nil {
		t.Errorf("repeated start: %v", err)
	}
}

func TestStartRoomNonMember(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 2)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	if err := s.StartRoom(ctx, roomID, tokens[1]); !isForbidden(err) {
		t.Errorf("non-member start error = %v, want ErrForbidden", err)
	}
}

func TestResultGating(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 3)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 2, tokens[1])
	s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 3, tokens[2])

	results, err := s.RoomResult(ctx, roomID)
	if err != nil {
		t.Fatalf("RoomResult: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results before any report = %d entries, want 0", len(results))
	}

	// a zero score is a real result, not "unreported"
	if err := s.StoreResult(ctx, roomID, tokens[0], domain.PlayResult{JudgeCountList: []int{0, 0, 0, 0, 40}, Score: 0}); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}
	if err := s.StoreResult(ctx, roomID, tokens[1], domain.PlayResult{JudgeCountList: []int{30, 5}, Score: 71000}); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}

	results, _ = s.RoomResult(ctx, roomID)
	if len(results) != 0 {
		t.Fatalf("results with one member pending = %d entries, want 0", len(results))
	}

	if err := s.StoreResult(ctx, roomID, tokens[2], domain.PlayResult{JudgeCountList: []int{40, 0, 0, 0, 0}, Score: 100000}); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}

	results, _ = s.RoomResult(ctx, roomID)
	if len(results) != 3 {
		t.Fatalf("results = %d entries, want 3", len(results))
	}
	// insertion order, no ranking
	wantUsers := []int64{1, 2, 3}
	for i, ru := range results {
		if ru.UserID != wantUsers[i] {
			t.Errorf("results[%d].UserID = %d, want %d", i, ru.UserID, wantUsers[i])
		}
	}
	if got := results[1].JudgeCountList; got[0] != 30 || got[1] != 5 || got[4] != 0 {
		t.Errorf("short judge list not zero-padded: %v", got)
	}
	if results[0].Score != 0 {
		t.Errorf("all-miss score = %d, want 0", results[0].Score)
	}
}

func TestStoreResultOverwrites(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 1)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	s.StoreResult(ctx, roomID, tokens[0], domain.PlayResult{JudgeCountList: []int{1, 2, 3, 4, 5}, Score: 100})
	s.StoreResult(ctx, roomID, tokens[0], domain.PlayResult{JudgeCountList: []int{5, 4, 3, 2, 1}, Score: 200})

	results, _ := s.RoomResult(ctx, roomID)
	if len(results) != 1 {
		t.Fatalf("results = %d entries, want 1", len(results))
	}
	if results[0].Score != 200 || results[0].JudgeCountList[0] != 5 {
		t.Errorf("resubmission not reflected: %+v", results[0])
	}
}

func TestLeaveRoomHostDissolves(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 2)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 2, tokens[1])

	removed, dissolved, err := s.LeaveRoom(ctx, roomID, tokens[0])
	if err != nil {
		t.Fatalf("LeaveRoom: %v", err)
	}
	if !removed || !dissolved {
		t.Errorf("host leave = removed %v, dissolved %v, want both", removed, dissolved)
	}

	status, roster, _ := s.WaitRoom(ctx, roomID, tokens[1])
	if status != domain.StatusDissolution {
		t.Errorf("status after host leave = %v, want Dissolution", status)
	}
	if len(roster) != 1 {
		t.Errorf("roster after host leave = %d, want 1", len(roster))
	}

	result, _ := s.JoinRoom(ctx, roomID, domain.DifficultyNormal, 2, tokens[1])
	if result != domain.JoinDisbanded {
		t.Errorf("join after dissolution = %v, want Disbanded", result)
	}
}

func TestLeaveRoomLastMemberDeletes(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 1)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	removed, dissolved, err := s.LeaveRoom(ctx, roomID, tokens[0])
	if err != nil {
		t.Fatalf("LeaveRoom: %v", err)
	}
	if !removed || !dissolved {
		t.Errorf("last leave = removed %v, dissolved %v, want both", removed, dissolved)
	}

	rooms, _ := s.ListRooms(ctx, 0)
	if len(rooms) != 0 {
		t.Errorf("rooms after last leave = %d, want 0", len(rooms))
	}
	status, _, _ := s.WaitRoom(ctx, roomID, tokens[0])
	if status != domain.StatusDissolution {
		t.Errorf("wait after deletion = %v, want Dissolution", status)
	}
}

func TestLeaveRoomNonMemberIsNoop(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 2)
	ctx := context.Background()

	roomID, _ := s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	removed, dissolved, err := s.LeaveRoom(ctx, roomID, tokens[1])
	if err != nil {
		t.Errorf("non-member leave: %v", err)
	}
	if removed || dissolved {
		t.Errorf("non-member leave = removed %v, dissolved %v, want neither", removed, dissolved)
	}
	_, roster, _ := s.WaitRoom(ctx, roomID, tokens[0])
	if len(roster) != 1 {
		t.Errorf("roster = %d, want 1", len(roster))
	}
}

func TestListRoomsFilter(t *testing.T) {
	s, tokens := newStoreWithUsers(t, 3)
	ctx := context.Background()

	s.CreateRoom(ctx, 10, domain.DifficultyNormal, 1, tokens[0])
	s.CreateRoom(ctx, 10, domain.DifficultyHard, 2, tokens[1])
	s.CreateRoom(ctx, 20, domain.DifficultyNormal, 3, tokens[2])

	all, _ := s.ListRooms(ctx, 0)
	if len(all) != 3 {
		t.Errorf("ListRooms(0) = %d rooms, want 3", len(all))
	}

	// both difficulties of a live are listed
	filtered, _ := s.ListRooms(ctx, 10)
	if len(filtered) != 2 {
		t.Errorf("ListRooms(10) = %d rooms, want 2", len(filtered))
	}
	for _, info := range filtered {
		if info.LiveID != 10 {
			t.Errorf("filtered room has live_id %d", info.LiveID)
		}
		if info.MaxUserCount != domain.MaxRoomMembers {
			t.Errorf("max_user_count = %d, want %d", info.MaxUserCount, domain.MaxRoomMembers)
		}
	}
}

func isForbidden(err error) bool {
	return errors.Is(err, domain.ErrForbidden)
}
