package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"session-service/domain"
)

// StartRoom transitions Waiting -> LiveStart. Host-only; repeating the call
// once live is an idempotent success.
func (r *Repository) StartRoom(ctx context.Context, roomID int64, token string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	var isHost bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_host FROM room_members WHERE room_id = $1 AND token = $2`,
		roomID, token,
	).Scan(&isHost)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: caller is not a member of the room", domain.ErrForbidden)
		}
		return fmt.Errorf("%w: failed to query membership: %v", domain.ErrStorageUnavailable, err)
	}
	if !isHost {
		return fmt.Errorf("%w: only the host may start the live", domain.ErrForbidden)
	}

	var status domain.WaitRoomStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM rooms WHERE room_id = $1 FOR UPDATE`,
		roomID,
	).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return fmt.Errorf("%w: failed to query room: %v", domain.ErrStorageUnavailable, err)
	}

	switch status {
	case domain.StatusLiveStart:
		// already started, nothing to do
	case domain.StatusDissolution:
		return fmt.Errorf("%w: room is dissolved", domain.ErrNotFound)
	default:
		if _, err = tx.ExecContext(ctx,
			`UPDATE rooms SET status = $1 WHERE room_id = $2`,
			domain.StatusLiveStart, roomID,
		); err != nil {
			return fmt.Errorf("%w: failed to update room: %v", domain.ErrStorageUnavailable, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
