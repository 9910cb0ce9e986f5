// Package admins implements storage access for editor accounts.
package admins

import (
	"context"

	"github.com/dberestov/microblog/internal/models"
)

// ExistsCondition selects exactly one lookup key for Exists.
type ExistsCondition struct {
	Email *string
	ID    *int64
}

// Filter is the optional criteria for List. Nil fields apply no constraint.
type Filter struct {
	Email *string // case-insensitive substring on email
	IsDel *bool
}

type Repository interface {
	Exists(ctx context.Context, cond ExistsCondition) (bool, error)

	// Create inserts a new admin with an already-hashed password, failing
	// with common.ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, email, hashedPassword string) (int64, error)

	// GetByEmail returns the admin including the password digest, for
	// login verification. A miss is common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)

	// GetByID returns the admin without exposing the digest, optionally
	// constrained by is_del.
	GetByID(ctx context.Context, id int64, isDel *bool) (*models.Admin, error)

	// PasswordDigest fetches the stored digest for the id+email pair.
	PasswordDigest(ctx context.Context, id int64, email string) (string, error)

	// UpdatePassword stores a new digest for the id+email pair. Returns
	// whether a row was updated.
	UpdatePassword(ctx context.Context, id int64, email, hashedPassword string) (bool, error)

	// List returns all matching admins ordered by id ascending. An empty
	// result is an empty slice, not an error.
	List(ctx context.Context, f Filter) ([]models.Admin, error)

	// Toggle atomically flips is_del and returns the new value, failing
	// with common.ErrNotFound when the id does not exist.
	Toggle(ctx context.Context, id int64) (bool, error)
}
