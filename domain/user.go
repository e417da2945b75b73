package domain

// User is the token-free projection of a directory entry. The token itself
// never leaves the directory layer except as the opaque credential the
// caller already holds.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LeaderCardID int64  `json:"leader_card_id"`
}
