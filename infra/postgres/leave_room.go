package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"session-service/domain"
)

// LeaveRoom removes the caller's membership under the room lock. Leaving is
// idempotent: a caller who is not a member gets an ack and no mutation.
// Policy: a departing host dissolves the room; the last member to leave
// deletes it. The returned flags report whether a membership was actually
// removed and whether this leave ended the room.
func (r *Repository) LeaveRoom(ctx context.Context, roomID int64, token string) (bool, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, false, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	var joinedCount int
	err = tx.QueryRowContext(ctx,
		`SELECT joined_user_count FROM rooms WHERE room_id = $1 FOR UPDATE`,
		roomID,
	).Scan(&joinedCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, false, nil // room already gone
		}
		return false, false, fmt.Errorf("%w: failed to query room: %v", domain.ErrStorageUnavailable, err)
	}

	var isHost bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_host FROM room_members WHERE room_id = $1 AND token = $2`,
		roomID, token,
	).Scan(&isHost)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, false, nil // not a member, nothing to do
		}
		return false, false, fmt.Errorf("%w: failed to query membership: %v", domain.ErrStorageUnavailable, err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM room_members WHERE room_id = $1 AND token = $2`,
		roomID, token,
	)
	if err != nil {
		return false, false, fmt.Errorf("%w: failed to delete member: %v", domain.ErrStorageUnavailable, err)
	}

	dissolved := false
	switch {
	case joinedCount <= 1:
		dissolved = true
		_, err = tx.ExecContext(ctx, `DELETE FROM rooms WHERE room_id = $1`, roomID)
	case isHost:
		dissolved = true
		_, err = tx.ExecContext(ctx,
			`UPDATE rooms SET joined_user_count = joined_user_count - 1, status = $1 WHERE room_id = $2`,
			domain.StatusDissolution, roomID)
	default:
		_, err = tx.ExecContext(ctx,
			`UPDATE rooms SET joined_user_count = joined_user_count - 1 WHERE room_id = $1`,
			roomID)
	}
	if err != nil {
		return false, false, fmt.Errorf("%w: failed to update room: %v", domain.ErrStorageUnavailable, err)
	}

	if err = tx.Commit(); err != nil {
		return false, false, fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return true, dissolved, nil
}
