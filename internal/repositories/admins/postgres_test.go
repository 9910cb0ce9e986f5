package admins

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dberestov/microblog/internal/common"
)

func ptr[T any](v T) *T { return &v }

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestGetByEmail_CarriesDigest(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT id, email, password, is_del FROM admins WHERE email = $1`).
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "is_del"}).
			AddRow(1, "a@b.c", "$2a$10$digest", false))

	a, err := repo.GetByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$digest", a.Password)
}

func TestGetByEmail_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT id, email, password, is_del FROM admins WHERE email = $1`).
		WithArgs("missing@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "is_del"}))

	_, err := repo.GetByEmail(context.Background(), "missing@b.c")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_AlreadyExists(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT(*) FROM admins WHERE email = $1`).
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), "a@b.c", "$2a$10$digest")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestList_EmailSubstringAndIsDel(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT id, email, is_del FROM admins WHERE email ILIKE $1 AND is_del = $2 ORDER BY id`).
		WithArgs("%@qq.com%", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_del"}).
			AddRow(1, "cakeal@qq.com", false))

	got, err := repo.List(context.Background(), Filter{Email: ptr("@qq.com"), IsDel: ptr(false)})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestList_NoFilters_EmptyIsOK(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT id, email, is_del FROM admins ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_del"}))

	got, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE admins SET password = $1 WHERE id = $2 AND email = $3`).
		WithArgs("$2a$10$new", int64(1), "a@b.c").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdatePassword(context.Background(), 1, "a@b.c", "$2a$10$new")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestToggle_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`UPDATE admins SET is_del = NOT is_del WHERE id = $1 RETURNING is_del`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"is_del"}))

	_, err := repo.Toggle(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
