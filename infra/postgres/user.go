package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"session-service/domain"
)

func (r *Repository) CreateUser(ctx context.Context, name, token string, leaderCardID int64) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, token, leader_card_id) VALUES ($1, $2, $3) RETURNING id`,
		name, token, leaderCardID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create user: %v", domain.ErrStorageUnavailable, err)
	}
	return id, nil
}

func (r *Repository) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, leader_card_id FROM users WHERE token = $1`,
		token,
	).Scan(&user.ID, &user.Name, &user.LeaderCardID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUnknownToken
		}
		return nil, fmt.Errorf("%w: failed to query user: %v", domain.ErrStorageUnavailable, err)
	}
	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, token, name string, leaderCardID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = $1, leader_card_id = $2 WHERE token = $3`,
		name, leaderCardID, token,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update user: %v", domain.ErrStorageUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to update user: %v", domain.ErrStorageUnavailable, err)
	}
	if affected == 0 {
		return domain.ErrUnknownToken
	}
	return nil
}
