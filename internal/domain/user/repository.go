package user

import (
	"context"
	"time"
)

type UserRepository interface {
	ListActive(ctx context.Context, companyID *int64) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	// GetByEmail matches case-insensitively, preferring active accounts.
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, companyID int64, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	TouchLastAccess(ctx context.Context, userID int64, at time.Time) error
	SoftDelete(ctx context.Context, id int64) error
}
