package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/models"
	"github.com/dberestov/microblog/internal/password"
	"github.com/dberestov/microblog/internal/repositories/admins"
	"github.com/dberestov/microblog/internal/rpc"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

type fakeRepo struct {
	rows []models.Admin
}

func (f *fakeRepo) Exists(_ context.Context, cond admins.ExistsCondition) (bool, error) {
	for _, a := range f.rows {
		if cond.Email != nil && a.Email == *cond.Email {
			return true, nil
		}
		if cond.ID != nil && a.ID == *cond.ID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(_ context.Context, email, hashedPassword string) (int64, error) {
	for _, a := range f.rows {
		if a.Email == email {
			return 0, common.ErrAlreadyExists
		}
	}
	id := int64(len(f.rows) + 1)
	f.rows = append(f.rows, models.Admin{ID: id, Email: email, Password: hashedPassword})
	return id, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range f.rows {
		if a.Email == email {
			row := a
			return &row, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, id int64, _ *bool) (*models.Admin, error) {
	for _, a := range f.rows {
		if a.ID == id {
			row := a
			row.Password = ""
			return &row, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRepo) PasswordDigest(_ context.Context, id int64, email string) (string, error) {
	for _, a := range f.rows {
		if a.ID == id && a.Email == email {
			return a.Password, nil
		}
	}
	return "", common.ErrNotFound
}

func (f *fakeRepo) UpdatePassword(_ context.Context, id int64, email, hashedPassword string) (bool, error) {
	for i, a := range f.rows {
		if a.ID == id && a.Email == email {
			f.rows[i].Password = hashedPassword
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) List(_ context.Context, _ admins.Filter) ([]models.Admin, error) {
	return f.rows, nil
}

func (f *fakeRepo) Toggle(_ context.Context, id int64) (bool, error) {
	for i, a := range f.rows {
		if a.ID == id {
			f.rows[i].IsDel = !a.IsDel
			return f.rows[i].IsDel, nil
		}
	}
	return false, common.ErrNotFound
}

func seeded(t *testing.T, email, plain string) *fakeRepo {
	t.Helper()
	digest, err := password.Hash(plain)
	require.NoError(t, err)
	return &fakeRepo{rows: []models.Admin{{ID: 1, Email: email, Password: digest}}}
}

func TestGetAdmin_ByAuth(t *testing.T) {
	t.Parallel()

	s := New(seeded(t, "admin@blog.io", "password"), nopLogger{})

	reply, err := s.GetAdmin(context.Background(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{ByAuth: &rpc.ByAuth{Email: "admin@blog.io", Password: "password"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), reply.Admin.ID)
	assert.Empty(t, reply.Admin.Password, "digest must not leave the service")
}

func TestGetAdmin_ByAuthWrongPassword(t *testing.T) {
	t.Parallel()

	s := New(seeded(t, "admin@blog.io", "password"), nopLogger{})

	_, err := s.GetAdmin(context.Background(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{ByAuth: &rpc.ByAuth{Email: "admin@blog.io", Password: "nope"}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetAdmin_ByAuthUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	t.Parallel()

	s := New(seeded(t, "admin@blog.io", "password"), nopLogger{})

	_, err := s.GetAdmin(context.Background(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{ByAuth: &rpc.ByAuth{Email: "ghost@blog.io", Password: "password"}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetAdmin_ConditionArms(t *testing.T) {
	t.Parallel()

	s := New(seeded(t, "admin@blog.io", "password"), nopLogger{})

	// Neither arm.
	_, err := s.GetAdmin(context.Background(), &rpc.GetAdminRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Both arms.
	_, err = s.GetAdmin(context.Background(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{
			ByAuth: &rpc.ByAuth{Email: "admin@blog.io", Password: "password"},
			ByID:   &rpc.ByID{ID: 1},
		},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// ByID alone works.
	reply, err := s.GetAdmin(context.Background(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{ByID: &rpc.ByID{ID: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@blog.io", reply.Admin.Email)
}

func TestCreateAdmin_DuplicateIsAlreadyExists(t *testing.T) {
	t.Parallel()

	s := New(seeded(t, "admin@blog.io", "password"), nopLogger{})

	_, err := s.CreateAdmin(context.Background(), &rpc.CreateAdminRequest{
		Email:    "admin@blog.io",
		Password: "another",
	})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestEditAdmin_ChangesPassword(t *testing.T) {
	t.Parallel()

	repo := seeded(t, "admin@blog.io", "password")
	s := New(repo, nopLogger{})

	np := "rotated"
	reply, err := s.EditAdmin(context.Background(), &rpc.EditAdminRequest{
		ID:          1,
		Email:       "admin@blog.io",
		Password:    "password",
		NewPassword: &np,
	})
	require.NoError(t, err)
	assert.True(t, reply.OK)

	// Old password no longer authenticates, the new one does.
	_, err = s.GetAdmin(context.Background(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{ByAuth: &rpc.ByAuth{Email: "admin@blog.io", Password: "password"}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetAdmin(context.Background(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{ByAuth: &rpc.ByAuth{Email: "admin@blog.io", Password: "rotated"}},
	})
	assert.NoError(t, err)
}

func TestEditAdmin_RequiresNewPassword(t *testing.T) {
	t.Parallel()

	s := New(seeded(t, "admin@blog.io", "password"), nopLogger{})

	_, err := s.EditAdmin(context.Background(), &rpc.EditAdminRequest{
		ID:       1,
		Email:    "admin@blog.io",
		Password: "password",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestEditAdmin_WrongCurrentPassword(t *testing.T) {
	t.Parallel()

	s := New(seeded(t, "admin@blog.io", "password"), nopLogger{})

	np := "rotated"
	_, err := s.EditAdmin(context.Background(), &rpc.EditAdminRequest{
		ID:          1,
		Email:       "admin@blog.io",
		Password:    "nope",
		NewPassword: &np,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListAdmin_EmptySucceeds(t *testing.T) {
	t.Parallel()

	s := New(&fakeRepo{}, nopLogger{})
	reply, err := s.ListAdmin(context.Background(), &rpc.ListAdminRequest{})
	require.NoError(t, err)
	assert.Empty(t, reply.Admins)
}

func TestToggleAdmin_MissIsNotFound(t *testing.T) {
	t.Parallel()

	s := New(&fakeRepo{}, nopLogger{})
	_, err := s.ToggleAdmin(context.Background(), &rpc.ToggleAdminRequest{ID: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
