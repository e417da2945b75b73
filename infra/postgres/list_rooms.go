package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"session-service/domain"
)

// ListRooms returns every room for the given live, or every room when
// liveID is 0. Status is deliberately not filtered: joining a dissolved
// room simply reports Disbanded.
func (r *Repository) ListRooms(ctx context.Context, liveID int64) ([]domain.RoomInfo, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if liveID == 0 {
		rows, err = r.db.QueryContext(ctx,
			`SELECT room_id, live_id, joined_user_count FROM rooms ORDER BY room_id`)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT room_id, live_id, joined_user_count FROM rooms WHERE live_id = $1 ORDER BY room_id`,
			liveID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query rooms: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	rooms := []domain.RoomInfo{}
	for rows.Next() {
		info := domain.RoomInfo{MaxUserCount: domain.MaxRoomMembers}
		if err := rows.Scan(&info.RoomID, &info.LiveID, &info.JoinedUserCount); err != nil {
			return nil, fmt.Errorf("%w: failed to scan room: %v", domain.ErrStorageUnavailable, err)
		}
		rooms = append(rooms, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate rooms: %v", domain.ErrStorageUnavailable, err)
	}
	return rooms, nil
}
