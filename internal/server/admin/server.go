// Package admin implements the admin service: account lookups and the
// credential check behind the editor login.
package admin

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/password"
	"github.com/dberestov/microblog/internal/repositories/admins"
	"github.com/dberestov/microblog/internal/rpc"
	"github.com/dberestov/microblog/internal/server/grpcx"
)

type Server struct {
	repo   admins.Repository
	logger logging.Logger
}

func New(repo admins.Repository, logger logging.Logger) *Server {
	return &Server{repo: repo, logger: logger.With("module", "admin-srv")}
}

func (s *Server) AdminExists(ctx context.Context, req *rpc.AdminExistsRequest) (*rpc.AdminExistsReply, error) {
	exists, err := s.repo.Exists(ctx, admins.ExistsCondition{
		Email: req.Condition.Email,
		ID:    req.Condition.ID,
	})
	if err != nil {
		s.logger.Error(ctx, "exists failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}
	return &rpc.AdminExistsReply{Exists: exists}, nil
}

func (s *Server) GetAdmin(ctx context.Context, req *rpc.GetAdminRequest) (*rpc.GetAdminReply, error) {
	cond := req.Condition
	switch {
	case cond.ByAuth != nil && cond.ByID == nil:
		return s.getByAuth(ctx, cond.ByAuth)
	case cond.ByID != nil && cond.ByAuth == nil:
		return s.getByID(ctx, cond.ByID)
	default:
		return nil, status.Error(codes.InvalidArgument, "get admin needs exactly one condition")
	}
}

// getByAuth validates an email+password pair. Both an unknown email and a
// wrong password come back as the same wrong-credentials failure so the
// reply does not leak which admins exist.
func (s *Server) getByAuth(ctx context.Context, ba *rpc.ByAuth) (*rpc.GetAdminReply, error) {
	a, err := s.repo.GetByEmail(ctx, ba.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, grpcx.Status(common.ErrWrongCredentials)
		}
		s.logger.Error(ctx, "get by email failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}

	ok, err := password.Verify(ba.Password, a.Password)
	if err != nil {
		s.logger.Error(ctx, "password verify failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}
	if !ok {
		return nil, grpcx.Status(common.ErrWrongCredentials)
	}

	a.Password = ""
	return &rpc.GetAdminReply{Admin: a}, nil
}

func (s *Server) getByID(ctx context.Context, bi *rpc.ByID) (*rpc.GetAdminReply, error) {
	a, err := s.repo.GetByID(ctx, bi.ID, bi.IsDel)
	if err != nil {
		return nil, grpcx.Status(err)
	}
	return &rpc.GetAdminReply{Admin: a}, nil
}

func (s *Server) CreateAdmin(ctx context.Context, req *rpc.CreateAdminRequest) (*rpc.CreateAdminReply, error) {
	digest, err := password.Hash(req.Password)
	if err != nil {
		s.logger.Error(ctx, "hash failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}

	id, err := s.repo.Create(ctx, req.Email, digest)
	if err != nil {
		s.logger.Error(ctx, "create failed", "email", req.Email, "error", err.Error())
		return nil, grpcx.Status(err)
	}
	s.logger.Info(ctx, "admin created", "id", id, "email", req.Email)
	return &rpc.CreateAdminReply{ID: id}, nil
}

func (s *Server) EditAdmin(ctx context.Context, req *rpc.EditAdminRequest) (*rpc.EditAdminReply, error) {
	if req.NewPassword == nil {
		return nil, status.Error(codes.InvalidArgument, "new password required")
	}

	digest, err := s.repo.PasswordDigest(ctx, req.ID, req.Email)
	if err != nil {
		return nil, grpcx.Status(err)
	}

	ok, err := password.Verify(req.Password, digest)
	if err != nil {
		s.logger.Error(ctx, "password verify failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}
	if !ok {
		return nil, grpcx.Status(common.ErrWrongCredentials)
	}

	newDigest, err := password.Hash(*req.NewPassword)
	if err != nil {
		s.logger.Error(ctx, "hash failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}

	updated, err := s.repo.UpdatePassword(ctx, req.ID, req.Email, newDigest)
	if err != nil {
		s.logger.Error(ctx, "update password failed", "id", req.ID, "error", err.Error())
		return nil, grpcx.Status(err)
	}
	s.logger.Info(ctx, "admin password changed", "id", req.ID)
	return &rpc.EditAdminReply{ID: req.ID, OK: updated}, nil
}

func (s *Server) ListAdmin(ctx context.Context, req *rpc.ListAdminRequest) (*rpc.ListAdminReply, error) {
	out, err := s.repo.List(ctx, admins.Filter{Email: req.Email, IsDel: req.IsDel})
	if err != nil {
		s.logger.Error(ctx, "list failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}
	// An empty admin list is a successful reply.
	return &rpc.ListAdminReply{Admins: out}, nil
}

func (s *Server) ToggleAdmin(ctx context.Context, req *rpc.ToggleAdminRequest) (*rpc.ToggleAdminReply, error) {
	isDel, err := s.repo.Toggle(ctx, req.ID)
	if err != nil {
		return nil, grpcx.Status(err)
	}
	s.logger.Info(ctx, "admin toggled", "id", req.ID, "is_del", isDel)
	return &rpc.ToggleAdminReply{ID: req.ID, IsDel: isDel}, nil
}
