package category

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/models"
	"github.com/dberestov/microblog/internal/repositories/categories"
	"github.com/dberestov/microblog/internal/rpc"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// fakeRepo serves canned rows keyed by name.
type fakeRepo struct {
	rows []models.Category
}

func (f *fakeRepo) Exists(_ context.Context, cond categories.ExistsCondition) (bool, error) {
	if cond.Name == nil && cond.ID == nil {
		return false, common.ErrInvalidArgument
	}
	for _, c := range f.rows {
		if cond.Name != nil && c.Name == *cond.Name {
			return true, nil
		}
		if cond.ID != nil && c.ID == *cond.ID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(ctx context.Context, name string) (int64, error) {
	exists, err := f.Exists(ctx, categories.ExistsCondition{Name: &name})
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: category %q", common.ErrAlreadyExists, name)
	}
	id := int64(len(f.rows) + 1)
	f.rows = append(f.rows, models.Category{ID: id, Name: name})
	return id, nil
}

func (f *fakeRepo) Edit(context.Context, int64, string) (bool, error) { return true, nil }

func (f *fakeRepo) Get(_ context.Context, id int64, _ *bool) (*models.Category, error) {
	for _, c := range f.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, flt categories.Filter) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.rows {
		if flt.IsDel != nil && c.IsDel != *flt.IsDel {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) Toggle(_ context.Context, id int64) (bool, error) {
	for i, c := range f.rows {
		if c.ID == id {
			f.rows[i].IsDel = !c.IsDel
			return f.rows[i].IsDel, nil
		}
	}
	return false, common.ErrNotFound
}

func TestListCategory_EmptyIsNotFound(t *testing.T) {
	t.Parallel()

	s := New(&fakeRepo{}, nopLogger{})
	_, err := s.ListCategory(context.Background(), &rpc.ListCategoryRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListCategory_ReturnsRows(t *testing.T) {
	t.Parallel()

	s := New(&fakeRepo{rows: []models.Category{{ID: 1, Name: "golang"}}}, nopLogger{})
	reply, err := s.ListCategory(context.Background(), &rpc.ListCategoryRequest{})
	require.NoError(t, err)
	assert.Len(t, reply.Categories, 1)
}

func TestCreateCategory_DuplicateIsAlreadyExists(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	s := New(repo, nopLogger{})

	created, err := s.CreateCategory(context.Background(), &rpc.CreateCategoryRequest{Name: "golang"})
	require.NoError(t, err)

	// Immediately visible to exists.
	name := "golang"
	exists, err := s.CategoryExists(context.Background(), &rpc.CategoryExistsRequest{
		Condition: rpc.CategoryExistsCondition{Name: &name},
	})
	require.NoError(t, err)
	assert.True(t, exists.Exists)

	_, err = s.CreateCategory(context.Background(), &rpc.CreateCategoryRequest{Name: "golang"})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	assert.Positive(t, created.ID)
}

func TestCategoryExists_NoConditionIsInvalidArgument(t *testing.T) {
	t.Parallel()

	s := New(&fakeRepo{}, nopLogger{})
	_, err := s.CategoryExists(context.Background(), &rpc.CategoryExistsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToggleCategory(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{rows: []models.Category{{ID: 1, Name: "golang"}}}
	s := New(repo, nopLogger{})

	first, err := s.ToggleCategory(context.Background(), &rpc.ToggleCategoryRequest{ID: 1})
	require.NoError(t, err)
	second, err := s.ToggleCategory(context.Background(), &rpc.ToggleCategoryRequest{ID: 1})
	require.NoError(t, err)

	assert.True(t, first.IsDel)
	assert.False(t, second.IsDel)

	_, err = s.ToggleCategory(context.Background(), &rpc.ToggleCategoryRequest{ID: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetCategory_MissIsNotFound(t *testing.T) {
	t.Parallel()

	s := New(&fakeRepo{}, nopLogger{})
	_, err := s.GetCategory(context.Background(), &rpc.GetCategoryRequest{ID: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
