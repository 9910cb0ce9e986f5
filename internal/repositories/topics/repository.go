// Package topics implements storage access for articles.
package topics

import (
	"context"
	"time"

	"github.com/dberestov/microblog/internal/listing"
	"github.com/dberestov/microblog/internal/models"
)

// CreateParams are the writable fields of a new topic. A nil Summary is
// derived from the content by the service layer before it reaches storage.
type CreateParams struct {
	Title      string
	CategoryID int64
	Content    string
	Summary    string
}

// EditParams rewrites an existing topic.
type EditParams struct {
	ID         int64
	Title      string
	CategoryID int64
	Content    string
	Summary    string
}

// Filter is the optional criteria for List. Nil fields apply no constraint.
// Start/End constrain dateline only when both are present; a one-sided
// range is a no-op (see listing.Conditions.AddBetween).
type Filter struct {
	CategoryID *int64
	Keyword    *string // case-insensitive substring on title
	IsDel      *bool
	Start      *time.Time
	End        *time.Time
}

type Repository interface {
	Create(ctx context.Context, p CreateParams) (int64, error)

	// Edit returns whether a row was updated.
	Edit(ctx context.Context, p EditParams) (bool, error)

	// Get fetches one topic, optionally constrained by is_del. When incHit
	// is true the hit counter is incremented before the read. A miss is
	// common.ErrNotFound.
	Get(ctx context.Context, id int64, isDel *bool, incHit bool) (*models.Topic, error)

	// List runs the count query and the windowed page query with the same
	// conditions, newest id first. An empty result is a successful empty
	// page, never an error.
	List(ctx context.Context, f Filter, w listing.PageWindow) (listing.Page[models.Topic], error)

	// Toggle atomically flips is_del and returns the new value, failing
	// with common.ErrNotFound when the id does not exist.
	Toggle(ctx context.Context, id int64) (bool, error)
}
