package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"session-service/domain"
	"session-service/infra/memory"
	"session-service/infra/messaging"
)

// recorder captures published events on a channel so tests can wait for
// the fire-and-forget goroutines.
type recorder struct {
	events chan string
}

func newRecorder() *recorder {
	return &recorder{events: make(chan string, 16)}
}

func (r *recorder) PublishRoomEvent(_ context.Context, _ int64, eventType string, _ interface{}) {
	r.events <- eventType
}

func (r *recorder) wait(t *testing.T, want string) {
	t.Helper()
	select {
	case got := <-r.events:
		if got != want {
			t.Errorf("published event %q, want %q", got, want)
		}
	case <-time.After(time.Second):
		t.Errorf("no %q event published", want)
	}
}

func (r *recorder) quiet(t *testing.T) {
	t.Helper()
	select {
	case got := <-r.events:
		t.Errorf("unexpected event %q published", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func seedUser(t *testing.T, store *memory.Store, name, token string) {
	t.Helper()
	if _, err := store.CreateUser(context.Background(), name, token, 1000); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
}

func TestCreateUserIssuesUniqueTokens(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateUserUseCase(store)
	ctx := context.Background()

	first, status, err := uc.Execute(ctx, "alice", 1000)
	if err != nil || status != http.StatusOK {
		t.Fatalf("Execute = %d, %v", status, err)
	}
	second, _, err := uc.Execute(ctx, "bob", 1001)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first == "" || first == second {
		t.Errorf("tokens %q and %q should be distinct and non-empty", first, second)
	}

	me := NewGetMeUseCase(store, nil)
	user, status, err := me.Execute(ctx, first)
	if err != nil || status != http.StatusOK {
		t.Fatalf("GetMe = %d, %v", status, err)
	}
	if user.Name != "alice" || user.LeaderCardID != 1000 {
		t.Errorf("GetMe returned %+v", user)
	}
}

func TestGetMeUnknownToken(t *testing.T) {
	store := memory.NewStore()
	uc := NewGetMeUseCase(store, nil)

	_, status, err := uc.Execute(context.Background(), "no-such-token")
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if !errors.Is(err, domain.ErrUnknownToken) {
		t.Errorf("err = %v, want ErrUnknownToken", err)
	}

	_, status, err = uc.Execute(context.Background(), "")
	if status != http.StatusUnauthorized || !errors.Is(err, domain.ErrUnknownToken) {
		t.Errorf("empty token: status = %d, err = %v", status, err)
	}
}

func TestUpdateUserReflectsInGetMe(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "alice", "tok-a")
	ctx := context.Background()

	update := NewUpdateUserUseCase(store, nil)
	if status, err := update.Execute(ctx, "tok-a", "alicia", 2000); err != nil || status != http.StatusOK {
		t.Fatalf("Update = %d, %v", status, err)
	}

	user, _, err := NewGetMeUseCase(store, nil).Execute(ctx, "tok-a")
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if user.Name != "alicia" || user.LeaderCardID != 2000 {
		t.Errorf("after update: %+v", user)
	}
}

func TestCreateRoomRejectsBadDifficulty(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "alice", "tok-a")

	uc := NewCreateRoomUseCase(store, store, nil, nil)
	_, status, err := uc.Execute(context.Background(), 10, domain.LiveDifficulty(9), "tok-a")
	if status != http.StatusBadRequest || !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("status = %d, err = %v, want 400 ErrInvalidInput", status, err)
	}
}

func TestCreateRoomUnknownToken(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateRoomUseCase(store, store, nil, nil)

	_, status, err := uc.Execute(context.Background(), 10, domain.DifficultyNormal, "ghost")
	if status != http.StatusUnauthorized || !errors.Is(err, domain.ErrUnknownToken) {
		t.Errorf("status = %d, err = %v, want 401 ErrUnknownToken", status, err)
	}
}

func TestRoomLifecycle(t *testing.T) {
	store := memory.NewStore()
	tokens := []string{"tok-0", "tok-1", "tok-2", "tok-3", "tok-4"}
	names := []string{"host", "p1", "p2", "p3", "late"}
	for i, tok := range tokens {
		seedUser(t, store, names[i], tok)
	}
	ctx := context.Background()
	rec := newRecorder()

	create := NewCreateRoomUseCase(store, store, nil, rec)
	join := NewJoinRoomUseCase(store, store, nil, rec)
	wait := NewWaitRoomUseCase(store, store, nil)
	start := NewStartRoomUseCase(store, rec)
	end := NewEndRoomUseCase(store, store, nil, rec)
	result := NewRoomResultUseCase(store)
	list := NewListRoomsUseCase(store)

	roomID, status, err := create.Execute(ctx, 10, domain.DifficultyNormal, tokens[0])
	if err != nil || status != http.StatusOK {
		t.Fatalf("create = %d, %v", status, err)
	}
	rec.wait(t, messaging.MSG_ROOM_CREATED)

	rooms, status, err := list.Execute(ctx, 10)
	if err != nil || status != http.StatusOK {
		t.Fatalf("list = %d, %v", status, err)
	}
	if len(rooms) != 1 || rooms[0].RoomID != roomID || rooms[0].JoinedUserCount != 1 {
		t.Fatalf("list = %+v", rooms)
	}

	for i := 1; i <= 3; i++ {
		res, status, err := join.Execute(ctx, roomID, domain.DifficultyNormal, tokens[i])
		if err != nil || status != http.StatusOK || res != domain.JoinOk {
			t.Fatalf("join #%d = %v, %d, %v", i, res, status, err)
		}
		rec.wait(t, messaging.MSG_PLAYER_JOINED)
	}

	res, status, err := join.Execute(ctx, roomID, domain.DifficultyNormal, tokens[4])
	if err != nil || status != http.StatusOK {
		t.Fatalf("overflow join = %d, %v", status, err)
	}
	if res != domain.JoinRoomFull {
		t.Errorf("overflow join = %v, want RoomFull", res)
	}

	roomStatus, roster, status, err := wait.Execute(ctx, roomID, tokens[1])
	if err != nil || status != http.StatusOK {
		t.Fatalf("wait = %d, %v", status, err)
	}
	if roomStatus != domain.StatusWaiting {
		t.Errorf("room status = %v, want Waiting", roomStatus)
	}
	if len(roster) != 4 {
		t.Fatalf("roster = %d members, want 4", len(roster))
	}
	for i, ru := range roster {
		if ru.IsMe != (i == 1) {
			t.Errorf("roster[%d].IsMe = %v from viewer p1", i, ru.IsMe)
		}
		if ru.IsHost != (i == 0) {
			t.Errorf("roster[%d].IsHost = %v", i, ru.IsHost)
		}
	}
	if roster[2].Name != "p2" {
		t.Errorf("roster[2].Name = %q, want p2", roster[2].Name)
	}

	if status, err := start.Execute(ctx, roomID, tokens[1]); status != http.StatusForbidden {
		t.Errorf("non-host start = %d, %v, want 403", status, err)
	}
	if status, err := start.Execute(ctx, roomID, tokens[0]); err != nil || status != http.StatusOK {
		t.Fatalf("host start = %d, %v", status, err)
	}
	rec.wait(t, messaging.MSG_LIVE_STARTED)

	scores, status, err := result.Execute(ctx, roomID)
	if err != nil || status != http.StatusOK {
		t.Fatalf("result = %d, %v", status, err)
	}
	if len(scores) != 0 {
		t.Errorf("result before reports = %d entries, want 0", len(scores))
	}

	for i := 0; i <= 3; i++ {
		play := domain.PlayResult{JudgeCountList: []int{10, 5, 2, 1, 0}, Score: int64(1000 * (i + 1))}
		if status, err := end.Execute(ctx, roomID, play, tokens[i]); err != nil || status != http.StatusOK {
			t.Fatalf("end #%d = %d, %v", i, status, err)
		}
		rec.wait(t, messaging.MSG_RESULT_REPORTED)
	}

	scores, _, err = result.Execute(ctx, roomID)
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("result = %d entries, want 4", len(scores))
	}
	for i, ru := range scores {
		if ru.Score != int64(1000*(i+1)) {
			t.Errorf("scores[%d] = %d, want %d (join order)", i, ru.Score, 1000*(i+1))
		}
	}
}

func TestJoinRoomUnknownRoom(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "alice", "tok-a")

	uc := NewJoinRoomUseCase(store, store, nil, nil)
	res, status, err := uc.Execute(context.Background(), 404, domain.DifficultyNormal, "tok-a")
	if err != nil || status != http.StatusOK {
		t.Fatalf("join = %d, %v", status, err)
	}
	if res != domain.JoinDisbanded {
		t.Errorf("join = %v, want Disbanded", res)
	}
}

func TestEndRoomNonMember(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "alice", "tok-a")
	seedUser(t, store, "bob", "tok-b")
	ctx := context.Background()

	roomID, _, err := NewCreateRoomUseCase(store, store, nil, nil).Execute(ctx, 10, domain.DifficultyNormal, "tok-a")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewEndRoomUseCase(store, store, nil, nil)
	play := domain.PlayResult{JudgeCountList: []int{1, 2, 3, 4, 5}, Score: 100}
	if status, err := uc.Execute(ctx, roomID, play, "tok-b"); status != http.StatusNotFound {
		t.Errorf("non-member end = %d, %v, want 404", status, err)
	}
}

func TestLeaveRoomDissolvesWhenHostLeaves(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "alice", "tok-a")
	seedUser(t, store, "bob", "tok-b")
	ctx := context.Background()
	rec := newRecorder()

	roomID, _, err := NewCreateRoomUseCase(store, store, nil, nil).Execute(ctx, 10, domain.DifficultyNormal, "tok-a")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := NewJoinRoomUseCase(store, store, nil, nil).Execute(ctx, roomID, domain.DifficultyNormal, "tok-b"); err != nil {
		t.Fatalf("join: %v", err)
	}

	leave := NewLeaveRoomUseCase(store, rec)
	if status, err := leave.Execute(ctx, roomID, "tok-a"); err != nil || status != http.StatusOK {
		t.Fatalf("leave = %d, %v", status, err)
	}
	rec.wait(t, messaging.MSG_PLAYER_LEFT)
	rec.wait(t, messaging.MSG_ROOM_DISSOLVED)

	roomStatus, _, _, err := NewWaitRoomUseCase(store, store, nil).Execute(ctx, roomID, "tok-b")
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if roomStatus != domain.StatusDissolution {
		t.Errorf("status after host leave = %v, want Dissolution", roomStatus)
	}

	// leaving again is a harmless ack and is not announced
	if status, err := leave.Execute(ctx, roomID, "tok-a"); err != nil || status != http.StatusOK {
		t.Errorf("repeat leave = %d, %v", status, err)
	}
	rec.quiet(t)
}

func TestLeaveRoomNoopPublishesNothing(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "alice", "tok-a")
	rec := newRecorder()

	leave := NewLeaveRoomUseCase(store, rec)
	if status, err := leave.Execute(context.Background(), 404, "tok-a"); err != nil || status != http.StatusOK {
		t.Fatalf("leave on missing room = %d, %v", status, err)
	}
	rec.quiet(t)
}
