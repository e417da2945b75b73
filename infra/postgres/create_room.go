package postgres

import (
	"context"
	"fmt"

	"session-service/domain"
)

// CreateRoom inserts the room and its host membership in one transaction,
// so no caller can ever observe a room without a host.
func (r *Repository) CreateRoom(ctx context.Context, liveID int64, difficulty domain.LiveDifficulty, userID int64, token string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	var roomID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO rooms (live_id, select_difficulty, joined_user_count, status)
		 VALUES ($1, $2, 1, $3)
		 RETURNING room_id`,
		liveID, difficulty, domain.StatusWaiting,
	).Scan(&roomID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create room: %v", domain.ErrStorageUnavailable, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO room_members (room_id, user_id, token, select_difficulty, is_host)
		 VALUES ($1, $2, $3, $4, TRUE)`,
		roomID, userID, token, difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to add host to room: %v", domain.ErrStorageUnavailable, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return roomID, nil
}
