package rpc

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/dberestov/microblog/internal/models"
)

// DateRange constrains the topic dateline. The constraint applies only when
// both endpoints are present; a one-sided range is ignored entirely (a
// long-standing behavior listing callers rely on).
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

type CreateTopicRequest struct {
	Title      string  `json:"title"`
	CategoryID int64   `json:"category_id"`
	Content    string  `json:"content"`
	Summary    *string `json:"summary,omitempty"`
}

type CreateTopicReply struct {
	ID int64 `json:"id"`
}

type EditTopicRequest struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	CategoryID int64   `json:"category_id"`
	Content    string  `json:"content"`
	Summary    *string `json:"summary,omitempty"`
}

type EditTopicReply struct {
	ID int64 `json:"id"`
	OK bool  `json:"ok"`
}

type GetTopicRequest struct {
	ID     int64 `json:"id"`
	IsDel  *bool `json:"is_del,omitempty"`
	IncHit *bool `json:"inc_hit,omitempty"`
}

type GetTopicReply struct {
	Topic *models.Topic `json:"topic"`
}

type ListTopicRequest struct {
	Page       *int64     `json:"page,omitempty"`
	CategoryID *int64     `json:"category_id,omitempty"`
	Keyword    *string    `json:"keyword,omitempty"`
	IsDel      *bool      `json:"is_del,omitempty"`
	DateRange  *DateRange `json:"dateline_range,omitempty"`
}

type ListTopicReply struct {
	Page        int64          `json:"page"`
	PageSize    int64          `json:"page_size"`
	PageTotal   int64          `json:"page_total"`
	RecordTotal int64          `json:"record_total"`
	Topics      []models.Topic `json:"topics"`
}

type ToggleTopicRequest struct {
	ID int64 `json:"id"`
}

type ToggleTopicReply struct {
	ID    int64 `json:"id"`
	IsDel bool  `json:"is_del"`
}

// TopicServiceServer is implemented by the topic service.
type TopicServiceServer interface {
	CreateTopic(ctx context.Context, req *CreateTopicRequest) (*CreateTopicReply, error)
	EditTopic(ctx context.Context, req *EditTopicRequest) (*EditTopicReply, error)
	GetTopic(ctx context.Context, req *GetTopicRequest) (*GetTopicReply, error)
	ListTopic(ctx context.Context, req *ListTopicRequest) (*ListTopicReply, error)
	ToggleTopic(ctx context.Context, req *ToggleTopicRequest) (*ToggleTopicReply, error)
}

// TopicServiceClient is the client-side mirror of the service.
type TopicServiceClient interface {
	CreateTopic(ctx context.Context, req *CreateTopicRequest, opts ...grpc.CallOption) (*CreateTopicReply, error)
	EditTopic(ctx context.Context, req *EditTopicRequest, opts ...grpc.CallOption) (*EditTopicReply, error)
	GetTopic(ctx context.Context, req *GetTopicRequest, opts ...grpc.CallOption) (*GetTopicReply, error)
	ListTopic(ctx context.Context, req *ListTopicRequest, opts ...grpc.CallOption) (*ListTopicReply, error)
	ToggleTopic(ctx context.Context, req *ToggleTopicRequest, opts ...grpc.CallOption) (*ToggleTopicReply, error)
}

type topicServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTopicServiceClient(cc grpc.ClientConnInterface) TopicServiceClient {
	return &topicServiceClient{cc: cc}
}

func (c *topicServiceClient) CreateTopic(ctx context.Context, req *CreateTopicRequest, opts ...grpc.CallOption) (*CreateTopicReply, error) {
	return invoke[CreateTopicReply](ctx, c.cc, "/blog.TopicService/CreateTopic", req, opts)
}

func (c *topicServiceClient) EditTopic(ctx context.Context, req *EditTopicRequest, opts ...grpc.CallOption) (*EditTopicReply, error) {
	return invoke[EditTopicReply](ctx, c.cc, "/blog.TopicService/EditTopic", req, opts)
}

func (c *topicServiceClient) GetTopic(ctx context.Context, req *GetTopicRequest, opts ...grpc.CallOption) (*GetTopicReply, error) {
	return invoke[GetTopicReply](ctx, c.cc, "/blog.TopicService/GetTopic", req, opts)
}

func (c *topicServiceClient) ListTopic(ctx context.Context, req *ListTopicRequest, opts ...grpc.CallOption) (*ListTopicReply, error) {
	return invoke[ListTopicReply](ctx, c.cc, "/blog.TopicService/ListTopic", req, opts)
}

func (c *topicServiceClient) ToggleTopic(ctx context.Context, req *ToggleTopicRequest, opts ...grpc.CallOption) (*ToggleTopicReply, error) {
	return invoke[ToggleTopicReply](ctx, c.cc, "/blog.TopicService/ToggleTopic", req, opts)
}

// TopicServiceDesc wires the service methods into a grpc server.
var TopicServiceDesc = grpc.ServiceDesc{
	ServiceName: "blog.TopicService",
	HandlerType: (*TopicServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTopic",
			Handler: unaryHandler("/blog.TopicService/CreateTopic",
				func(srv any, ctx context.Context, req *CreateTopicRequest) (*CreateTopicReply, error) {
					return srv.(TopicServiceServer).CreateTopic(ctx, req)
				}),
		},
		{
			MethodName: "EditTopic",
			Handler: unaryHandler("/blog.TopicService/EditTopic",
				func(srv any, ctx context.Context, req *EditTopicRequest) (*EditTopicReply, error) {
					return srv.(TopicServiceServer).EditTopic(ctx, req)
				}),
		},
		{
			MethodName: "GetTopic",
			Handler: unaryHandler("/blog.TopicService/GetTopic",
				func(srv any, ctx context.Context, req *GetTopicRequest) (*GetTopicReply, error) {
					return srv.(TopicServiceServer).GetTopic(ctx, req)
				}),
		},
		{
			MethodName: "ListTopic",
			Handler: unaryHandler("/blog.TopicService/ListTopic",
				func(srv any, ctx context.Context, req *ListTopicRequest) (*ListTopicReply, error) {
					return srv.(TopicServiceServer).ListTopic(ctx, req)
				}),
		},
		{
			MethodName: "ToggleTopic",
			Handler: unaryHandler("/blog.TopicService/ToggleTopic",
				func(srv any, ctx context.Context, req *ToggleTopicRequest) (*ToggleTopicReply, error) {
					return srv.(TopicServiceServer).ToggleTopic(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/rpc/topic.go",
}

// RegisterTopicServiceServer registers srv on a grpc server.
func RegisterTopicServiceServer(s grpc.ServiceRegistrar, srv TopicServiceServer) {
	s.RegisterService(&TopicServiceDesc, srv)
}
