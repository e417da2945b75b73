package postgres

import (
	"database/sql"
	"fmt"
	"log"
)

const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			token VARCHAR(255) NOT NULL UNIQUE,
			leader_card_id BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createRoomsTable = `
		CREATE TABLE IF NOT EXISTS rooms (
			room_id BIGSERIAL PRIMARY KEY,
			live_id BIGINT NOT NULL,
			select_difficulty SMALLINT NOT NULL, -- 1: normal, 2: hard
			joined_user_count INT NOT NULL DEFAULT 1,
			status SMALLINT NOT NULL DEFAULT 1, -- 1: waiting, 2: live_start, 3: dissolution
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createRoomMembersTable = `
		CREATE TABLE IF NOT EXISTS room_members (
			id BIGSERIAL PRIMARY KEY,
			room_id BIGINT REFERENCES rooms(room_id) ON DELETE CASCADE NOT NULL,
			user_id BIGINT REFERENCES users(id) NOT NULL,
			token VARCHAR(255) NOT NULL,
			select_difficulty SMALLINT NOT NULL,
			is_host BOOLEAN NOT NULL DEFAULT FALSE,
			score BIGINT, -- NULL until the member reports a result
			perfect INT NOT NULL DEFAULT 0,
			great INT NOT NULL DEFAULT 0,
			good INT NOT NULL DEFAULT 0,
			bad INT NOT NULL DEFAULT 0,
			miss INT NOT NULL DEFAULT 0,
			joined_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(room_id, user_id)
		);`

	createIndexes = `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_token ON users(token);
		CREATE INDEX IF NOT EXISTS idx_rooms_live_id ON rooms(live_id);
		CREATE INDEX IF NOT EXISTS idx_room_members_room_id ON room_members(room_id);
		CREATE INDEX IF NOT EXISTS idx_room_members_token ON room_members(room_id, token);`
)

func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"users", createUsersTable},
		{"rooms", createRoomsTable},
		{"room_members", createRoomMembersTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database tables initialized")
	return nil
}
