// Package topic implements the topic (article) service.
package topic

import (
	"context"

	"github.com/dberestov/microblog/internal/listing"
	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/repositories/topics"
	"github.com/dberestov/microblog/internal/rpc"
	"github.com/dberestov/microblog/internal/server/grpcx"
)

// summaryRunes caps the derived summary length.
const summaryRunes = 255

type Server struct {
	repo   topics.Repository
	logger logging.Logger
}

func New(repo topics.Repository, logger logging.Logger) *Server {
	return &Server{repo: repo, logger: logger.With("module", "topic-srv")}
}

// summarize derives a summary for a topic when the editor leaves the field
// empty: the first 255 runes of the content.
func summarize(content string, summary *string) string {
	if summary != nil {
		return *summary
	}
	runes := []rune(content)
	if len(runes) <= summaryRunes {
		return content
	}
	return string(runes[:summaryRunes])
}

func (s *Server) CreateTopic(ctx context.Context, req *rpc.CreateTopicRequest) (*rpc.CreateTopicReply, error) {
	id, err := s.repo.Create(ctx, topics.CreateParams{
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Content:    req.Content,
		Summary:    summarize(req.Content, req.Summary),
	})
	if err != nil {
		s.logger.Error(ctx, "create failed", "title", req.Title, "error", err.Error())
		return nil, grpcx.Status(err)
	}
	s.logger.Info(ctx, "topic created", "id", id)
	return &rpc.CreateTopicReply{ID: id}, nil
}

func (s *Server) EditTopic(ctx context.Context, req *rpc.EditTopicRequest) (*rpc.EditTopicReply, error) {
	ok, err := s.repo.Edit(ctx, topics.EditParams{
		ID:         req.ID,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Content:    req.Content,
		Summary:    summarize(req.Content, req.Summary),
	})
	if err != nil {
		s.logger.Error(ctx, "edit failed", "id", req.ID, "error", err.Error())
		return nil, grpcx.Status(err)
	}
	return &rpc.EditTopicReply{ID: req.ID, OK: ok}, nil
}

func (s *Server) GetTopic(ctx context.Context, req *rpc.GetTopicRequest) (*rpc.GetTopicReply, error) {
	incHit := req.IncHit != nil && *req.IncHit
	t, err := s.repo.Get(ctx, req.ID, req.IsDel, incHit)
	if err != nil {
		return nil, grpcx.Status(err)
	}
	return &rpc.GetTopicReply{Topic: t}, nil
}

func (s *Server) ListTopic(ctx context.Context, req *rpc.ListTopicRequest) (*rpc.ListTopicReply, error) {
	f := topics.Filter{
		CategoryID: req.CategoryID,
		Keyword:    req.Keyword,
		IsDel:      req.IsDel,
	}
	if req.DateRange != nil {
		f.Start = req.DateRange.Start
		f.End = req.DateRange.End
	}

	w := listing.NewPageWindow(req.Page, listing.TopicPageSize)
	page, err := s.repo.List(ctx, f, w)
	if err != nil {
		s.logger.Error(ctx, "list failed", "error", err.Error())
		return nil, grpcx.Status(err)
	}

	// An empty page is a successful reply for topics.
	return &rpc.ListTopicReply{
		Page:        page.Page,
		PageSize:    page.PageSize,
		PageTotal:   page.PageTotal,
		RecordTotal: page.RecordTotal,
		Topics:      page.Items,
	}, nil
}

func (s *Server) ToggleTopic(ctx context.Context, req *rpc.ToggleTopicRequest) (*rpc.ToggleTopicReply, error) {
	isDel, err := s.repo.Toggle(ctx, req.ID)
	if err != nil {
		return nil, grpcx.Status(err)
	}
	s.logger.Info(ctx, "topic toggled", "id", req.ID, "is_del", isDel)
	return &rpc.ToggleTopicReply{ID: req.ID, IsDel: isDel}, nil
}
