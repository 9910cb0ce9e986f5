package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/dbx"
	"github.com/dberestov/microblog/internal/listing"
	"github.com/dberestov/microblog/internal/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, cond ExistsCondition) (bool, error) {
	return existsBy(ctx, r.db, cond)
}

// existsBy is shared by Exists and Create so the create path re-checks
// uniqueness through the same predicate instead of a second round trip.
func existsBy(ctx context.Context, q dbx.DBTX, cond ExistsCondition) (bool, error) {
	var (
		query string
		arg   any
	)
	switch {
	case cond.Name != nil && cond.ID == nil:
		query, arg = `SELECT COUNT(*) FROM categories WHERE name = $1`, *cond.Name
	case cond.ID != nil && cond.Name == nil:
		query, arg = `SELECT COUNT(*) FROM categories WHERE id = $1`, *cond.ID
	default:
		return false, fmt.Errorf("%w: exists needs exactly one of name or id", common.ErrInvalidArgument)
	}

	var count int64
	if err := q.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := existsBy(ctx, tx, ExistsCondition{Name: &name})
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: category %q", common.ErrAlreadyExists, name)
		}
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
		).Scan(&id); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) Edit(ctx context.Context, id int64, name string) (bool, error) {
	var updated bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var count int64
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM categories WHERE name = $1 AND id <> $2`, name, id,
		).Scan(&count); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: category %q", common.ErrAlreadyExists, name)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE categories SET name = $1 WHERE id = $2`, name, id)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		updated = affected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64, isDel *bool) (*models.Category, error) {
	var c listing.Conditions
	listing.AddEq(&c, "id", &id)
	listing.AddEq(&c, "is_del", isDel)

	query := `SELECT id, name, is_del FROM categories` + c.Where(1)

	cat := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, c.Args()...).Scan(&cat.ID, &cat.Name, &cat.IsDel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cat, nil
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]models.Category, error) {
	var c listing.Conditions
	c.AddILike("name", f.Name)
	listing.AddEq(&c, "is_del", f.IsDel)

	query := `SELECT id, name, is_del FROM categories` + c.Where(1) + ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, c.Args()...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.IsDel); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cats, nil
}

func (r *PostgresRepository) Toggle(ctx context.Context, id int64) (bool, error) {
	var isDel bool
	err := r.db.QueryRowContext(ctx,
		`UPDATE categories SET is_del = NOT is_del WHERE id = $1 RETURNING is_del`, id,
	).Scan(&isDel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, common.ErrNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return isDel, nil
}
