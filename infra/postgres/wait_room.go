package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"session-service/domain"
)

// WaitRoom is a point-in-time, side-effect-free snapshot for polling
// clients. A room with no row reports Dissolution, never an error.
func (r *Repository) WaitRoom(ctx context.Context, roomID int64, token string) (domain.WaitRoomStatus, []domain.RoomUser, error) {
	var status domain.WaitRoomStatus
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM rooms WHERE room_id = $1`,
		roomID,
	).Scan(&status)
	if err != nil {
		if err != sql.ErrNoRows {
			return 0, nil, fmt.Errorf("%w: failed to query room: %v", domain.ErrStorageUnavailable, err)
		}
		status = domain.StatusDissolution
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT m.user_id, u.name, u.leader_card_id, m.select_difficulty, m.token, m.is_host
		 FROM room_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.room_id = $1
		 ORDER BY m.id`,
		roomID,
	)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: failed to query members: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	roster := []domain.RoomUser{}
	for rows.Next() {
		var (
			ru          domain.RoomUser
			memberToken string
		)
		if err := rows.Scan(&ru.UserID, &ru.Name, &ru.LeaderCardID, &ru.SelectDifficulty, &memberToken, &ru.IsHost); err != nil {
			return 0, nil, fmt.Errorf("%w: failed to scan member: %v", domain.ErrStorageUnavailable, err)
		}
		ru.IsMe = memberToken == token
		roster = append(roster, ru)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: failed to iterate members: %v", domain.ErrStorageUnavailable, err)
	}
	return status, roster, nil
}
