package domain

// MaxRoomMembers is the fixed room capacity.
const MaxRoomMembers = 4

// JudgeCategories is the number of judgement buckets a play produces:
// perfect, great, good, bad, miss, in that order.
const JudgeCategories = 5

// LiveDifficulty is the song difficulty a room is bound to.
// The numeric values are the persisted wire format and must not change.
type LiveDifficulty int16

const (
	DifficultyNormal LiveDifficulty = 1
	DifficultyHard   LiveDifficulty = 2
)

func (d LiveDifficulty) Valid() bool {
	return d == DifficultyNormal || d == DifficultyHard
}

func (d LiveDifficulty) String() string {
	switch d {
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// WaitRoomStatus is the room lifecycle state reported to waiting clients.
type WaitRoomStatus int16

const (
	StatusWaiting     WaitRoomStatus = 1
	StatusLiveStart   WaitRoomStatus = 2
	StatusDissolution WaitRoomStatus = 3
)

func (s WaitRoomStatus) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusLiveStart:
		return "live_start"
	case StatusDissolution:
		return "dissolution"
	default:
		return "unknown"
	}
}

// JoinRoomResult is the business outcome of a join attempt. It is data,
// not an error: full and disbanded rooms are expected conditions.
type JoinRoomResult int16

const (
	JoinOk         JoinRoomResult = 1
	JoinRoomFull   JoinRoomResult = 2
	JoinDisbanded  JoinRoomResult = 3
	JoinOtherError JoinRoomResult = 4
)

func (r JoinRoomResult) String() string {
	switch r {
	case JoinOk:
		return "ok"
	case JoinRoomFull:
		return "room_full"
	case JoinDisbanded:
		return "disbanded"
	case JoinOtherError:
		return "other_error"
	default:
		return "unknown"
	}
}

// RoomInfo is the listing projection of a room.
type RoomInfo struct {
	RoomID          int64 `json:"room_id"`
	LiveID          int64 `json:"live_id"`
	JoinedUserCount int   `json:"joined_user_count"`
	MaxUserCount    int   `json:"max_user_count"`
}

// RoomUser is the per-viewer roster projection: IsMe is computed against
// the caller's token at read time and is never stored.
type RoomUser struct {
	UserID           int64          `json:"user_id"`
	Name             string         `json:"name"`
	LeaderCardID     int64          `json:"leader_card_id"`
	SelectDifficulty LiveDifficulty `json:"select_difficulty"`
	IsMe             bool           `json:"is_me"`
	IsHost           bool           `json:"is_host"`
}

// PlayResult is one member's end-of-play report.
type PlayResult struct {
	JudgeCountList []int
	Score          int64
}

// ResultUser is one row of the final scoreboard.
type ResultUser struct {
	UserID         int64 `json:"user_id"`
	JudgeCountList []int `json:"judge_count_list"`
	Score          int64 `json:"score"`
}

// PadJudgeCounts normalizes a judge list to exactly JudgeCategories entries,
// zero-filling missing trailing slots. Longer lists are rejected upstream.
func PadJudgeCounts(counts []int) []int {
	padded := make([]int, JudgeCategories)
	copy(padded, counts)
	return padded
}
