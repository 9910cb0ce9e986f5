package topics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/listing"
	"github.com/dberestov/microblog/internal/models"
)

const topicColumns = `id, title, category_id, content, summary, hit, is_del, dateline`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p CreateParams) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO topics (title, category_id, content, summary) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Title, p.CategoryID, p.Content, p.Summary,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) Edit(ctx context.Context, p EditParams) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE topics SET title = $1, content = $2, summary = $3, category_id = $4 WHERE id = $5`,
		p.Title, p.Content, p.Summary, p.CategoryID, p.ID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64, isDel *bool, incHit bool) (*models.Topic, error) {
	if incHit {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE topics SET hit = hit + 1 WHERE id = $1`, id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}

	var c listing.Conditions
	listing.AddEq(&c, "id", &id)
	listing.AddEq(&c, "is_del", isDel)

	query := `SELECT ` + topicColumns + ` FROM topics` + c.Where(1)

	t := &models.Topic{}
	err := r.db.QueryRowContext(ctx, query, c.Args()...).Scan(
		&t.ID, &t.Title, &t.CategoryID, &t.Content, &t.Summary, &t.Hit, &t.IsDel, &t.Dateline)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// conditions resolves the optional filter fields into an ordered condition
// list. The order is fixed (category, keyword, is_del, date range) so the
// count and page queries bind identical parameters.
func (f Filter) conditions() *listing.Conditions {
	var c listing.Conditions
	listing.AddEq(&c, "category_id", f.CategoryID)
	c.AddILike("title", f.Keyword)
	listing.AddEq(&c, "is_del", f.IsDel)
	c.AddBetween("dateline", f.Start, f.End)
	return &c
}

func (r *PostgresRepository) List(ctx context.Context, f Filter, w listing.PageWindow) (listing.Page[models.Topic], error) {
	var zero listing.Page[models.Topic]
	c := f.conditions()

	var recordTotal int64
	countQuery := `SELECT COUNT(*) FROM topics` + c.Where(1)
	if err := r.db.QueryRowContext(ctx, countQuery, c.Args()...).Scan(&recordTotal); err != nil {
		return zero, fmt.Errorf("db error: %w", err)
	}

	// LIMIT/OFFSET bind first, conditions renumber after them.
	pageQuery := `SELECT ` + topicColumns + ` FROM topics` + c.Where(3) +
		` ORDER BY id DESC LIMIT $1 OFFSET $2`
	args := append([]any{w.PageSize, w.Offset}, c.Args()...)

	rows, err := r.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return zero, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []models.Topic
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.Title, &t.CategoryID, &t.Content, &t.Summary, &t.Hit, &t.IsDel, &t.Dateline); err != nil {
			return zero, fmt.Errorf("db error: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return zero, fmt.Errorf("db error: %w", err)
	}

	return listing.NewPage(items, w, recordTotal), nil
}

func (r *PostgresRepository) Toggle(ctx context.Context, id int64) (bool, error) {
	var isDel bool
	err := r.db.QueryRowContext(ctx,
		`UPDATE topics SET is_del = NOT is_del WHERE id = $1 RETURNING is_del`, id,
	).Scan(&isDel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, common.ErrNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return isDel, nil
}
