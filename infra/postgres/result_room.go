package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"session-service/domain"
)

// RoomResult assembles the scoreboard in membership-insertion order. While
// any member's score is still NULL the slice is empty: callers keep polling
// until everyone has reported.
func (r *Repository) RoomResult(ctx context.Context, roomID int64) ([]domain.ResultUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, score, perfect, great, good, bad, miss
		 FROM room_members
		 WHERE room_id = $1
		 ORDER BY id`,
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query results: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	results := []domain.ResultUser{}
	for rows.Next() {
		var (
			ru     domain.ResultUser
			score  sql.NullInt64
			counts [domain.JudgeCategories]int
		)
		if err := rows.Scan(&ru.UserID, &score, &counts[0], &counts[1], &counts[2], &counts[3], &counts[4]); err != nil {
			return nil, fmt.Errorf("%w: failed to scan result: %v", domain.ErrStorageUnavailable, err)
		}
		if !score.Valid {
			// not everyone has finished yet
			return []domain.ResultUser{}, nil
		}
		ru.Score = score.Int64
		ru.JudgeCountList = counts[:]
		results = append(results, ru)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate results: %v", domain.ErrStorageUnavailable, err)
	}
	return results, nil
}
