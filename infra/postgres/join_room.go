package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"session-service/domain"
)

// JoinRoom is the capacity-guarded entry point. The room row is locked with
// FOR UPDATE before the count is read, so two racing joiners can never both
// see the last free slot: the second blocks until the first commits and
// then observes the incremented count.
func (r *Repository) JoinRoom(ctx context.Context, roomID int64, difficulty domain.LiveDifficulty, userID int64, token string) (domain.JoinRoomResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.JoinOtherError, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	var (
		joinedCount int
		status      domain.WaitRoomStatus
	)
	err = tx.QueryRowContext(ctx,
		`SELECT joined_user_count, status FROM rooms
		 WHERE room_id = $1 AND select_difficulty = $2
		 FOR UPDATE`,
		roomID, difficulty,
	).Scan(&joinedCount, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.JoinDisbanded, nil
		}
		return domain.JoinOtherError, fmt.Errorf("%w: failed to query room: %v", domain.ErrStorageUnavailable, err)
	}

	if status == domain.StatusDissolution {
		return domain.JoinDisbanded, nil
	}

	var isMember bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2)`,
		roomID, userID,
	).Scan(&isMember)
	if err != nil {
		return domain.JoinOtherError, fmt.Errorf("%w: failed to query membership: %v", domain.ErrStorageUnavailable, err)
	}
	if isMember {
		// membership is keyed by (room, user): rejoining is an idempotent
		// ack, never a second row
		return domain.JoinOk, nil
	}

	if joinedCount >= domain.MaxRoomMembers {
		return domain.JoinRoomFull, nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO room_members (room_id, user_id, token, select_difficulty, is_host)
		 VALUES ($1, $2, $3, $4, FALSE)`,
		roomID, userID, token, difficulty,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// UNIQUE(room_id, user_id) backstop
			return domain.JoinOk, nil
		}
		return domain.JoinOtherError, fmt.Errorf("%w: failed to insert member: %v", domain.ErrStorageUnavailable, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET joined_user_count = joined_user_count + 1 WHERE room_id = $1`,
		roomID,
	)
	if err != nil {
		return domain.JoinOtherError, fmt.Errorf("%w: failed to update room: %v", domain.ErrStorageUnavailable, err)
	}

	if err = tx.Commit(); err != nil {
		return domain.JoinOtherError, fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return domain.JoinOk, nil
}
