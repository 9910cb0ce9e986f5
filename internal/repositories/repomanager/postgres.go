package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dberestov/microblog/internal/migrations"
	"github.com/dberestov/microblog/internal/repositories/admins"
	"github.com/dberestov/microblog/internal/repositories/categories"
	"github.com/dberestov/microblog/internal/repositories/topics"
)

type PostgresRepositoryManager struct {
	db         *sql.DB
	categories categories.Repository
	topics     topics.Repository
	admins     admins.Repository
}

// NewPostgresRepositoryManager opens the pgx pool for dsn and applies any
// pending migrations before handing out repositories.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:         db,
		categories: categories.NewPostgresRepository(db),
		topics:     topics.NewPostgresRepository(db),
		admins:     admins.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Conn() *sql.DB { return m.db }

func (m *PostgresRepositoryManager) Close() error { return m.db.Close() }

func (m *PostgresRepositoryManager) Categories() categories.Repository { return m.categories }

func (m *PostgresRepositoryManager) Topics() topics.Repository { return m.topics }

func (m *PostgresRepositoryManager) Admins() admins.Repository { return m.admins }
