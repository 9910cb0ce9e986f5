package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dberestov/microblog/internal/models"
)

// CategoryExistsCondition selects exactly one lookup key. Handlers reject
// requests where neither (or both) arms are set.
type CategoryExistsCondition struct {
	Name *string `json:"name,omitempty"`
	ID   *int64  `json:"id,omitempty"`
}

type CategoryExistsRequest struct {
	Condition CategoryExistsCondition `json:"condition"`
}

type CategoryExistsReply struct {
	Exists bool `json:"exists"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type CreateCategoryReply struct {
	ID int64 `json:"id"`
}

type EditCategoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EditCategoryReply struct {
	ID int64 `json:"id"`
	OK bool  `json:"ok"`
}

type GetCategoryRequest struct {
	ID    int64 `json:"id"`
	IsDel *bool `json:"is_del,omitempty"`
}

type GetCategoryReply struct {
	Category *models.Category `json:"category"`
}

type ListCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	IsDel *bool   `json:"is_del,omitempty"`
}

type ListCategoryReply struct {
	Categories []models.Category `json:"categories"`
}

type ToggleCategoryRequest struct {
	ID int64 `json:"id"`
}

type ToggleCategoryReply struct {
	ID    int64 `json:"id"`
	IsDel bool  `json:"is_del"`
}

// CategoryServiceServer is implemented by the category service.
type CategoryServiceServer interface {
	CategoryExists(ctx context.Context, req *CategoryExistsRequest) (*CategoryExistsReply, error)
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CreateCategoryReply, error)
	EditCategory(ctx context.Context, req *EditCategoryRequest) (*EditCategoryReply, error)
	GetCategory(ctx context.Context, req *GetCategoryRequest) (*GetCategoryReply, error)
	ListCategory(ctx context.Context, req *ListCategoryRequest) (*ListCategoryReply, error)
	ToggleCategory(ctx context.Context, req *ToggleCategoryRequest) (*ToggleCategoryReply, error)
}

// CategoryServiceClient is the client-side mirror of the service.
type CategoryServiceClient interface {
	CategoryExists(ctx context.Context, req *CategoryExistsRequest, opts ...grpc.CallOption) (*CategoryExistsReply, error)
	CreateCategory(ctx context.Context, req *CreateCategoryRequest, opts ...grpc.CallOption) (*CreateCategoryReply, error)
	EditCategory(ctx context.Context, req *EditCategoryRequest, opts ...grpc.CallOption) (*EditCategoryReply, error)
	GetCategory(ctx context.Context, req *GetCategoryRequest, opts ...grpc.CallOption) (*GetCategoryReply, error)
	ListCategory(ctx context.Context, req *ListCategoryRequest, opts ...grpc.CallOption) (*ListCategoryReply, error)
	ToggleCategory(ctx context.Context, req *ToggleCategoryRequest, opts ...grpc.CallOption) (*ToggleCategoryReply, error)
}

type categoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCategoryServiceClient(cc grpc.ClientConnInterface) CategoryServiceClient {
	return &categoryServiceClient{cc: cc}
}

func invoke[Rep any](ctx context.Context, cc grpc.ClientConnInterface, method string, req any, opts []grpc.CallOption) (*Rep, error) {
	out := new(Rep)
	if err := cc.Invoke(ctx, method, req, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *categoryServiceClient) CategoryExists(ctx context.Context, req *CategoryExistsRequest, opts ...grpc.CallOption) (*CategoryExistsReply, error) {
	return invoke[CategoryExistsReply](ctx, c.cc, "/blog.CategoryService/CategoryExists", req, opts)
}

func (c *categoryServiceClient) CreateCategory(ctx context.Context, req *CreateCategoryRequest, opts ...grpc.CallOption) (*CreateCategoryReply, error) {
	return invoke[CreateCategoryReply](ctx, c.cc, "/blog.CategoryService/CreateCategory", req, opts)
}

func (c *categoryServiceClient) EditCategory(ctx context.Context, req *EditCategoryRequest, opts ...grpc.CallOption) (*EditCategoryReply, error) {
	return invoke[EditCategoryReply](ctx, c.cc, "/blog.CategoryService/EditCategory", req, opts)
}

func (c *categoryServiceClient) GetCategory(ctx context.Context, req *GetCategoryRequest, opts ...grpc.CallOption) (*GetCategoryReply, error) {
	return invoke[GetCategoryReply](ctx, c.cc, "/blog.CategoryService/GetCategory", req, opts)
}

func (c *categoryServiceClient) ListCategory(ctx context.Context, req *ListCategoryRequest, opts ...grpc.CallOption) (*ListCategoryReply, error) {
	return invoke[ListCategoryReply](ctx, c.cc, "/blog.CategoryService/ListCategory", req, opts)
}

func (c *categoryServiceClient) ToggleCategory(ctx context.Context, req *ToggleCategoryRequest, opts ...grpc.CallOption) (*ToggleCategoryReply, error) {
	return invoke[ToggleCategoryReply](ctx, c.cc, "/blog.CategoryService/ToggleCategory", req, opts)
}

// unaryHandler adapts a typed service method to the grpc.ServiceDesc
// handler signature, running the interceptor chain when present.
func unaryHandler[Req any, Rep any](
	fullMethod string,
	call func(srv any, ctx context.Context, req *Req) (*Rep, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CategoryServiceDesc wires the service methods into a grpc server.
var CategoryServiceDesc = grpc.ServiceDesc{
	ServiceName: "blog.CategoryService",
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CategoryExists",
			Handler: unaryHandler("/blog.CategoryService/CategoryExists",
				func(srv any, ctx context.Context, req *CategoryExistsRequest) (*CategoryExistsReply, error) {
					return srv.(CategoryServiceServer).CategoryExists(ctx, req)
				}),
		},
		{
			MethodName: "CreateCategory",
			Handler: unaryHandler("/blog.CategoryService/CreateCategory",
				func(srv any, ctx context.Context, req *CreateCategoryRequest) (*CreateCategoryReply, error) {
					return srv.(CategoryServiceServer).CreateCategory(ctx, req)
				}),
		},
		{
			MethodName: "EditCategory",
			Handler: unaryHandler("/blog.CategoryService/EditCategory",
				func(srv any, ctx context.Context, req *EditCategoryRequest) (*EditCategoryReply, error) {
					return srv.(CategoryServiceServer).EditCategory(ctx, req)
				}),
		},
		{
			MethodName: "GetCategory",
			Handler: unaryHandler("/blog.CategoryService/GetCategory",
				func(srv any, ctx context.Context, req *GetCategoryRequest) (*GetCategoryReply, error) {
					return srv.(CategoryServiceServer).GetCategory(ctx, req)
				}),
		},
		{
			MethodName: "ListCategory",
			Handler: unaryHandler("/blog.CategoryService/ListCategory",
				func(srv any, ctx context.Context, req *ListCategoryRequest) (*ListCategoryReply, error) {
					return srv.(CategoryServiceServer).ListCategory(ctx, req)
				}),
		},
		{
			MethodName: "ToggleCategory",
			Handler: unaryHandler("/blog.CategoryService/ToggleCategory",
				func(srv any, ctx context.Context, req *ToggleCategoryRequest) (*ToggleCategoryReply, error) {
					return srv.(CategoryServiceServer).ToggleCategory(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/rpc/category.go",
}

// RegisterCategoryServiceServer registers srv on a grpc server.
func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryServiceDesc, srv)
}
