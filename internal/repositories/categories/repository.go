// Package categories implements storage access for topic categories.
package categories

import (
	"context"

	"github.com/dberestov/microblog/internal/models"
)

// ExistsCondition selects exactly one lookup key for Exists. The arms are
// matched once at the entry of the repository; setting neither (or both)
// is an invalid argument.
type ExistsCondition struct {
	Name *string
	ID   *int64
}

// Filter is the optional criteria for List. Nil fields apply no constraint.
type Filter struct {
	Name  *string // case-insensitive substring on name
	IsDel *bool   // exact match on the soft-delete flag
}

type Repository interface {
	Exists(ctx context.Context, cond ExistsCondition) (bool, error)

	// Create inserts a new category, failing with common.ErrAlreadyExists
	// when the name is taken. The exists check and the insert run in one
	// transaction.
	Create(ctx context.Context, name string) (int64, error)

	// Edit renames a category. The uniqueness check excludes the row being
	// edited. Returns whether a row was updated.
	Edit(ctx context.Context, id int64, name string) (bool, error)

	// Get fetches one category by id, optionally constrained by is_del.
	Get(ctx context.Context, id int64, isDel *bool) (*models.Category, error)

	// List returns all matching categories ordered by id ascending. An
	// empty result is returned as an empty slice; the category service
	// turns that into NotFound per its listing contract.
	List(ctx context.Context, f Filter) ([]models.Category, error)

	// Toggle atomically flips is_del and returns the new value, failing
	// with common.ErrNotFound when the id does not exist.
	Toggle(ctx context.Context, id int64) (bool, error)
}
