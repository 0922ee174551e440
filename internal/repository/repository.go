package repository

import (
	"context"

	"evermore/couple-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CoupleDataRepository defines the interface for interacting with a couple's
// persisted progress state. Each call is atomic on its own, but a load
// followed by a save is not; callers doing a read-modify-write must
// serialize per couple.
type CoupleDataRepository interface {
	GetByCoupleID(ctx context.Context, coupleID string) (*domain.CoupleData, error)
	Create(ctx context.Context, data *domain.CoupleData) error
	Update(ctx context.Context, data *domain.CoupleData) error
}

// AccountRepository defines the interface for interacting with couple accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.CoupleAccount) error
	GetByEmail(ctx context.Context, email string) (*domain.CoupleAccount, error)
}
