package postgres

import (
	"context"
	"fmt"

	"github.com/hrygo/summarify/store"
)

func (db *DB) CreateUser(ctx context.Context, create *store.User) (*store.User, error) {
	query := `
		INSERT INTO "user" (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_ts
	`
	var user store.User
	if err := db.db.QueryRowContext(ctx, query,
		create.Username,
		create.Email,
		create.PasswordHash,
	).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (db *DB) GetUser(ctx context.Context, find *store.FindUser) (*store.User, error) {
	limitOne := 1
	find.Limit = &limitOne
	list, err := db.ListUsers(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (db *DB) ListUsers(ctx context.Context, find *store.FindUser) ([]*store.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_ts
		FROM "user"
		WHERE 1=1
	`
	var args []interface{}
	argIndex := 1

	if find.ID != nil {
		query += fmt.Sprintf(" AND id = $%d", argIndex)
		args = append(args, *find.ID)
		argIndex++
	}
	if find.Username != nil {
		query += fmt.Sprintf(" AND username = $%d", argIndex)
		args = append(args, *find.Username)
		argIndex++
	}
	if find.Email != nil {
		query += fmt.Sprintf(" AND email = $%d", argIndex)
		args = append(args, *find.Email)
		argIndex++
	}

	query += " ORDER BY created_ts DESC"

	if find.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, *find.Limit)
	}

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*store.User
	for rows.Next() {
		var user store.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
