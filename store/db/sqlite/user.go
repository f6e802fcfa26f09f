package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/hrygo/summarify/store"
)

// CreateUser creates a new user.
func (d *DB) CreateUser(ctx context.Context, create *store.User) (*store.User, error) {
	stmt := `
		INSERT INTO user (username, email, password_hash)
		VALUES (?, ?, ?)
		RETURNING id, username, email, password_hash, created_ts
	`
	var user store.User
	if err := d.db.QueryRowContext(ctx, stmt,
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
		return nil, errors.Wrap(err, "failed to create user")
	}
	return &user, nil
}

// GetUser gets a single user matching the find condition.
func (d *DB) GetUser(ctx context.Context, find *store.FindUser) (*store.User, error) {
	limitOne := 1
	find.Limit = &limitOne
	list, err := d.ListUsers(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// ListUsers lists users matching the find condition.
func (d *DB) ListUsers(ctx context.Context, find *store.FindUser) ([]*store.User, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.ID != nil {
		where, args = append(where, "id = ?"), append(args, *find.ID)
	}
	if find.Username != nil {
		where, args = append(where, "username = ?"), append(args, *find.Username)
	}
	if find.Email != nil {
		where, args = append(where, "email = ?"), append(args, *find.Email)
	}

	query := `SELECT id, username, email, password_hash, created_ts
		FROM user
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC`
	if find.Limit != nil {
		query += " LIMIT ?"
		args = append(args, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
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
			return nil, errors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
