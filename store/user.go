package store

import "context"

// User is a registered account.
// The username doubles as the login identifier; registration sets it to the email.
type User struct {
	ID           int32
	Username     string
	Email        string
	PasswordHash string
	CreatedTs    int64
}

// FindUser is the find condition for users.
type FindUser struct {
	ID       *int32
	Username *string
	Email    *string
	Limit    *int
}

// CreateUser creates a new user.
func (s *Store) CreateUser(ctx context.Context, create *User) (*User, error) {
	return s.driver.CreateUser(ctx, create)
}

// GetUser gets a single user matching the find condition, or nil when none matches.
func (s *Store) GetUser(ctx context.Context, find *FindUser) (*User, error) {
	return s.driver.GetUser(ctx, find)
}

// ListUsers lists users matching the find condition.
func (s *Store) ListUsers(ctx context.Context, find *FindUser) ([]*User, error) {
	return s.driver.ListUsers(ctx, find)
}
