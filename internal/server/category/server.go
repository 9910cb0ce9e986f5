// Package category implements the category service.
package category

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/repositories/categories"
	"github.com/dberestov/microblog/internal/rpc"
	"github.com/dberestov/microblog/internal/server/grpcx"
)

type Server struct {
	repo   categories.Repository
	logger logging.Logger
}

func New(repo categories.Repository, logger logging.Logger) *Server {
	return &Server{repo: repo, logger: logger.With("module", "category-srv")}
}

func (s *Server) CategoryExists(ctx context.Context, req *rpc.CategoryExistsRequest) (*rpc.CategoryExistsReply, error) {
	exists, err := s.repo.Exists(ctx, categories.ExistsCondition{
		Name: req.Condition.Name,
		ID:   req.Condition.ID,
	})
	if err != nil {
		s.logger.Error(ctx, "exists failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}
	return &rpc.CategoryExistsReply{Exists: exists}, nil
}

func (s *Server) CreateCategory(ctx context.Context, req *rpc.CreateCategoryRequest) (*rpc.CreateCategoryReply, error) {
	id, err := s.repo.Create(ctx, req.Name)
	if err != nil {
		s.logger.Error(ctx, "create failed", "name", req.Name, "error", err.Error())
		return nil, grpcx.Status(err)
	}
	s.logger.Info(ctx, "category created", "id", id, "name", req.Name)
	return &rpc.CreateCategoryReply{ID: id}, nil
}

func (s *Server) EditCategory(ctx context.Context, req *rpc.EditCategoryRequest) (*rpc.EditCategoryReply, error) {
	ok, err := s.repo.Edit(ctx, req.ID, req.Name)
	if err != nil {
		s.logger.Error(ctx, "edit failed", "id", req.ID, "error", err.Error())
		return nil, grpcx.Status(err)
	}
	return &rpc.EditCategoryReply{ID: req.ID, OK: ok}, nil
}

func (s *Server) GetCategory(ctx context.Context, req *rpc.GetCategoryRequest) (*rpc.GetCategoryReply, error) {
	cat, err := s.repo.Get(ctx, req.ID, req.IsDel)
	if err != nil {
		return nil, grpcx.Status(err)
	}
	return &rpc.GetCategoryReply{Category: cat}, nil
}

func (s *Server) ListCategory(ctx context.Context, req *rpc.ListCategoryRequest) (*rpc.ListCategoryReply, error) {
	cats, err := s.repo.List(ctx, categories.Filter{Name: req.Name, IsDel: req.IsDel})
	if err != nil {
		s.logger.Error(ctx, "list failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}
	// Listing contract for categories: an empty result is NotFound, unlike
	// topics where an empty page succeeds.
	if len(cats) == 0 {
		return nil, status.Error(codes.NotFound, "no matching categories")
	}
	return &rpc.ListCategoryReply{Categories: cats}, nil
}

func (s *Server) ToggleCategory(ctx context.Context, req *rpc.ToggleCategoryRequest) (*rpc.ToggleCategoryReply, error) {
	isDel, err := s.repo.Toggle(ctx, req.ID)
	if err != nil {
		return nil, grpcx.Status(err)
	}
	s.logger.Info(ctx, "category toggled", "id", req.ID, "is_del", isDel)
	return &rpc.ToggleCategoryReply{ID: req.ID, IsDel: isDel}, nil
}
