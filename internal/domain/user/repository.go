package user

import "context"

type Repository interface {
	// Create persists a new account and returns its identifier. Login
	// uniqueness is enforced by the store; a duplicate surfaces as
	// ErrLoginTaken.
	Create(ctx context.Context, u *User) (int64, error)
	FindByLogin(ctx context.Context, login string) (User, error)
}
