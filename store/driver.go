package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	Migrate(ctx context.Context) error

	// User model related methods.
	CreateUser(ctx context.Context, create *User) (*User, error)
	GetUser(ctx context.Context, find *FindUser) (*User, error)
	ListUsers(ctx context.Context, find *FindUser) ([]*User, error)

	// GenerationRecord model related methods.
	CreateGenerationRecord(ctx context.Context, create *GenerationRecord) (*GenerationRecord, error)
	ListGenerationRecords(ctx context.Context, find *FindGenerationRecord) ([]*GenerationRecord, error)
}
