package topics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/listing"
)

func ptr[T any](v T) *T { return &v }

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func topicRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "category_id", "content", "summary", "hit", "is_del", "dateline",
	})
	for _, id := range ids {
		rows.AddRow(id, "title", 1, "content", "summary", 0, false, time.Now())
	}
	return rows
}

func TestList_NoFilters_ReturnsEverything(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	// With zero filters both queries must carry no WHERE clause at all.
	mock.ExpectQuery(`SELECT COUNT(*) FROM topics`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(61))
	mock.ExpectQuery(`SELECT id, title, category_id, content, summary, hit, is_del, dateline FROM topics ORDER BY id DESC LIMIT $1 OFFSET $2`).
		WithArgs(listing.TopicPageSize, int64(0)).
		WillReturnRows(topicRows(3, 2, 1))

	page, err := repo.List(context.Background(), Filter{}, listing.NewPageWindow(nil, listing.TopicPageSize))
	require.NoError(t, err)

	assert.Equal(t, int64(61), page.RecordTotal)
	assert.Equal(t, int64(3), page.PageTotal)
	assert.Equal(t, int64(0), page.Page)
	assert.Len(t, page.Items, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_AllFilters_SameConditionsOnBothQueries(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	f := Filter{
		CategoryID: ptr(int64(2)),
		Keyword:    ptr("go"),
		IsDel:      ptr(false),
		Start:      &start,
		End:        &end,
	}

	mock.ExpectQuery(`SELECT COUNT(*) FROM topics WHERE category_id = $1 AND title ILIKE $2 AND is_del = $3 AND dateline BETWEEN $4 AND $5`).
		WithArgs(int64(2), "%go%", false, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, title, category_id, content, summary, hit, is_del, dateline FROM topics WHERE category_id = $3 AND title ILIKE $4 AND is_del = $5 AND dateline BETWEEN $6 AND $7 ORDER BY id DESC LIMIT $1 OFFSET $2`).
		WithArgs(listing.TopicPageSize, int64(30), int64(2), "%go%", false, start, end).
		WillReturnRows(topicRows(9))

	page, err := repo.List(context.Background(), f, listing.NewPageWindow(ptr(int64(1)), listing.TopicPageSize))
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.RecordTotal)
	assert.Equal(t, int64(1), page.PageTotal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_OneSidedRangeIgnored(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Only the start endpoint is present: the range constraint must vanish,
	// producing the same queries as no range at all.
	mock.ExpectQuery(`SELECT COUNT(*) FROM topics`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT id, title, category_id, content, summary, hit, is_del, dateline FROM topics ORDER BY id DESC LIMIT $1 OFFSET $2`).
		WithArgs(listing.TopicPageSize, int64(0)).
		WillReturnRows(topicRows())

	page, err := repo.List(context.Background(), Filter{Start: &start}, listing.NewPageWindow(nil, listing.TopicPageSize))
	require.NoError(t, err)

	assert.Equal(t, int64(0), page.RecordTotal)
	assert.Equal(t, int64(0), page.PageTotal)
	assert.Empty(t, page.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_IncrementsHit(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE topics SET hit = hit + 1 WHERE id = $1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, title, category_id, content, summary, hit, is_del, dateline FROM topics WHERE id = $1 AND is_del = $2`).
		WithArgs(int64(5), false).
		WillReturnRows(topicRows(5))

	got, err := repo.Get(context.Background(), 5, ptr(false), true)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT id, title, category_id, content, summary, hit, is_del, dateline FROM topics WHERE id = $1`).
		WithArgs(int64(404)).
		WillReturnRows(topicRows())

	_, err := repo.Get(context.Background(), 404, nil, false)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestToggle(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`UPDATE topics SET is_del = NOT is_del WHERE id = $1 RETURNING is_del`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"is_del"}).AddRow(true))
	mock.ExpectQuery(`UPDATE topics SET is_del = NOT is_del WHERE id = $1 RETURNING is_del`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"is_del"}).AddRow(false))

	// Double toggle restores the original value.
	first, err := repo.Toggle(context.Background(), 1)
	require.NoError(t, err)
	second, err := repo.Toggle(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, second)
}

func TestToggle_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	mock.ExpectQuery(`UPDATE topics SET is_del = NOT is_del WHERE id = $1 RETURNING is_del`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"is_del"}))

	_, err := repo.Toggle(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_StoreErrorWrapped(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT COUNT(*) FROM topics`).WillReturnError(boom)

	_, err := repo.List(context.Background(), Filter{}, listing.NewPageWindow(nil, listing.TopicPageSize))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "db error")
}
