// Package repomanager opens the shared connection pool, applies migrations,
// and hands out the per-entity repositories.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dberestov/microblog/internal/repositories/admins"
	"github.com/dberestov/microblog/internal/repositories/categories"
	"github.com/dberestov/microblog/internal/repositories/topics"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Close() error
	Categories() categories.Repository
	Topics() topics.Repository
	Admins() admins.Repository
}
