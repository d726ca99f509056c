// Package service implements the business rules of the application: user
// registration and login, token lifecycle, and the ownership-scoped CRUD
// contract shared by all four finance resource kinds.
package service

import (
	"context"

	"github.com/ametelin/fintrack/models"
)

// AuthService is the credential store plus token service: registration,
// credential verification, and JWT issue/verify.
type AuthService interface {
	// Register creates a new user account with a hashed secret. The
	// returned user carries no plaintext password.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the email/password pair. Unknown email and wrong
	// password both fail with [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT whose sole identity claim is the
	// user's id.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token,
	// or [ErrTokenIsExpiredOrInvalid] on any validation failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResourceService is the ownership-scoped CRUD contract, instantiated once
// per resource kind. T is the record type, In its pointer-field input type.
//
// Every single-record operation checks existence first (absent records
// surface the store's not-found error) and ownership second
// ([ErrNotResourceOwner] for foreign records).
type ResourceService[T models.Owned, In any] interface {
	// List returns all records owned by callerID in the kind's sort order.
	List(ctx context.Context, callerID int64) ([]T, error)

	// Create validates required fields, applies kind-specific defaults,
	// forces ownership to callerID, and persists the record.
	Create(ctx context.Context, callerID int64, in In) (T, error)

	// Get returns the record with the given id if callerID owns it.
	Get(ctx context.Context, callerID int64, id int64) (T, error)

	// Update applies only the supplied fields of in; omitted fields keep
	// their stored values.
	Update(ctx context.Context, callerID int64, id int64, in In) (T, error)

	// Delete removes the record permanently.
	Delete(ctx context.Context, callerID int64, id int64) error
}
