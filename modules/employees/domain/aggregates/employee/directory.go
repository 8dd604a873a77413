package employee

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("employee not found")
	ErrUnknownSortField = errors.New("unknown sort field")
)

// Directory is the remote authoritative collection of employee records.
// Implementations perform no caching and no retries; every operation may fail
// and callers decide how to surface failure.
type Directory interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id uint) (Employee, error)
	Create(ctx context.Context, data CreateDTO) (Employee, error)
	Update(ctx context.Context, id uint, data UpdateDTO) (Employee, error)
	Delete(ctx context.Context, id uint) error
	// CheckEmail reports whether the email is already in use by a record other
	// than excludeID (zero means no exclusion, i.e. a new record).
	CheckEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	CheckMobile(ctx context.Context, mobile string, excludeID uint) (bool, error)
}
