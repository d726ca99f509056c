package store

import (
	"context"

	"github.com/ametelin/fintrack/models"
)

// UserRepository is the data-access contract of the credential store.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Duplicate email/username yield
	// [ErrEmailAlreadyExists] / [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered under email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ResourceRepository is the CRUD contract shared by all four resource kinds.
// The concrete column layout is supplied by a [Schema]; callers pass field
// maps keyed by column name, which keeps one implementation sufficient for
// every record shape.
//
// Ownership is intentionally not enforced here: GetByID, Update and Delete
// address records by primary key alone so that the service layer can apply
// its existence-then-ownership policy.
type ResourceRepository[T any] interface {
	// ListByUser returns all records owned by userID in the schema's sort
	// order (sort column descending).
	ListByUser(ctx context.Context, userID int64) ([]T, error)

	// Create inserts a record built from the given column/value map and
	// returns the stored row.
	Create(ctx context.Context, fields map[string]any) (T, error)

	// GetByID returns the record with the given primary key, or
	// [ErrResourceNotFound].
	GetByID(ctx context.Context, id int64) (T, error)

	// Update applies the given column/value changes to the record and
	// returns the updated row. The changes map must be non-empty.
	Update(ctx context.Context, id int64, changes map[string]any) (T, error)

	// Delete removes the record permanently. Deleting an absent record
	// yields [ErrResourceNotFound].
	Delete(ctx context.Context, id int64) error
}
