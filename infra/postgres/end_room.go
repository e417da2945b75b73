package postgres

import (
	"context"
	"fmt"

	"session-service/domain"
)

// StoreResult records one member's tally and score. A resubmission simply
// overwrites the previous report.
func (r *Repository) StoreResult(ctx context.Context, roomID int64, token string, result domain.PlayResult) error {
	counts := domain.PadJudgeCounts(result.JudgeCountList)

	res, err := r.db.ExecContext(ctx,
		`UPDATE room_members
		 SET score = $1, perfect = $2, great = $3, good = $4, bad = $5, miss = $6
		 WHERE room_id = $7 AND token = $8`,
		result.Score, counts[0], counts[1], counts[2], counts[3], counts[4],
		roomID, token,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to store result: %v", domain.ErrStorageUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to store result: %v", domain.ErrStorageUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: caller is not a member of the room", domain.ErrNotFound)
	}
	return nil
}
