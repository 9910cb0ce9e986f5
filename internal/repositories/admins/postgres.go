package admins

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

func existsBy(ctx context.Context, q dbx.DBTX, cond ExistsCondition) (bool, error) {
	var (
		query string
		arg   any
	)
	switch {
	case cond.Email != nil && cond.ID == nil:
		query, arg = `SELECT COUNT(*) FROM admins WHERE email = $1`, *cond.Email
	case cond.ID != nil && cond.Email == nil:
		query, arg = `SELECT COUNT(*) FROM admins WHERE id = $1`, *cond.ID
	default:
		return false, fmt.Errorf("%w: exists needs exactly one of email or id", common.ErrInvalidArgument)
	}

	var count int64
	if err := q.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, email, hashedPassword string) (int64, error) {
	var id int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := existsBy(ctx, tx, ExistsCondition{Email: &email})
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: admin %q", common.ErrAlreadyExists, email)
		}
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO admins (email, password) VALUES ($1, $2) RETURNING id`,
			email, hashedPassword,
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

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	a := &models.Admin{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, is_del FROM admins WHERE email = $1`, email,
	).Scan(&a.ID, &a.Email, &a.Password, &a.IsDel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64, isDel *bool) (*models.Admin, error) {
	var c listing.Conditions
	listing.AddEq(&c, "id", &id)
	listing.AddEq(&c, "is_del", isDel)

	query := `SELECT id, email, is_del FROM admins` + c.Where(1)

	a := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, c.Args()...).Scan(&a.ID, &a.Email, &a.IsDel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) PasswordDigest(ctx context.Context, id int64, email string) (string, error) {
	var digest string
	err := r.db.QueryRowContext(ctx,
		`SELECT password FROM admins WHERE id = $1 AND email = $2`, id, email,
	).Scan(&digest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return digest, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id int64, email, hashedPassword string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admins SET password = $1 WHERE id = $2 AND email = $3`,
		hashedPassword, id, email)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]models.Admin, error) {
	var c listing.Conditions
	c.AddILike("email", f.Email)
	listing.AddEq(&c, "is_del", f.IsDel)

	query := `SELECT id, email, is_del FROM admins` + c.Where(1) + ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, c.Args()...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.IsDel); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Toggle(ctx context.Context, id int64) (bool, error) {
	var isDel bool
	err := r.db.QueryRowContext(ctx,
		`UPDATE admins SET is_del = NOT is_del WHERE id = $1 RETURNING is_del`, id,
	).Scan(&isDel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, common.ErrNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return isDel, nil
}
