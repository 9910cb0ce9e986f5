package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dberestov/microblog/internal/models"
)

// AdminExistsCondition selects exactly one lookup key.
type AdminExistsCondition struct {
	Email *string `json:"email,omitempty"`
	ID    *int64  `json:"id,omitempty"`
}

type AdminExistsRequest struct {
	Condition AdminExistsCondition `json:"condition"`
}

type AdminExistsReply struct {
	Exists bool `json:"exists"`
}

// ByAuth looks an admin up by credentials; the service verifies the
// password against the stored digest before returning the row.
type ByAuth struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ByID looks an admin up by primary key, optionally constrained by is_del.
type ByID struct {
	ID    int64 `json:"id"`
	IsDel *bool `json:"is_del,omitempty"`
}

// GetAdminCondition is a tagged union: exactly one arm must be set. It is
// matched once at the entry of the handler.
type GetAdminCondition struct {
	ByAuth *ByAuth `json:"by_auth,omitempty"`
	ByID   *ByID   `json:"by_id,omitempty"`
}

type GetAdminRequest struct {
	Condition GetAdminCondition `json:"condition"`
}

type GetAdminReply struct {
	Admin *models.Admin `json:"admin"`
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAdminReply struct {
	ID int64 `json:"id"`
}

type EditAdminRequest struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	NewPassword *string `json:"new_password,omitempty"`
}

type EditAdminReply struct {
	ID int64 `json:"id"`
	OK bool  `json:"ok"`
}

type ListAdminRequest struct {
	Email *string `json:"email,omitempty"`
	IsDel *bool   `json:"is_del,omitempty"`
}

type ListAdminReply struct {
	Admins []models.Admin `json:"admins"`
}

type ToggleAdminRequest struct {
	ID int64 `json:"id"`
}

type ToggleAdminReply struct {
	ID    int64 `json:"id"`
	IsDel bool  `json:"is_del"`
}

// AdminServiceServer is implemented by the admin service.
type AdminServiceServer interface {
	AdminExists(ctx context.Context, req *AdminExistsRequest) (*AdminExistsReply, error)
	GetAdmin(ctx context.Context, req *GetAdminRequest) (*GetAdminReply, error)
	CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*CreateAdminReply, error)
	EditAdmin(ctx context.Context, req *EditAdminRequest) (*EditAdminReply, error)
	ListAdmin(ctx context.Context, req *ListAdminRequest) (*ListAdminReply, error)
	ToggleAdmin(ctx context.Context, req *ToggleAdminRequest) (*ToggleAdminReply, error)
}

// AdminServiceClient is the client-side mirror of the service.
type AdminServiceClient interface {
	AdminExists(ctx context.Context, req *AdminExistsRequest, opts ...grpc.CallOption) (*AdminExistsReply, error)
	GetAdmin(ctx context.Context, req *GetAdminRequest, opts ...grpc.CallOption) (*GetAdminReply, error)
	CreateAdmin(ctx context.Context, req *CreateAdminRequest, opts ...grpc.CallOption) (*CreateAdminReply, error)
	EditAdmin(ctx context.Context, req *EditAdminRequest, opts ...grpc.CallOption) (*EditAdminReply, error)
	ListAdmin(ctx context.Context, req *ListAdminRequest, opts ...grpc.CallOption) (*ListAdminReply, error)
	ToggleAdmin(ctx context.Context, req *ToggleAdminRequest, opts ...grpc.CallOption) (*ToggleAdminReply, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc: cc}
}

func (c *adminServiceClient) AdminExists(ctx context.Context, req *AdminExistsRequest, opts ...grpc.CallOption) (*AdminExistsReply, error) {
	return invoke[AdminExistsReply](ctx, c.cc, "/blog.AdminService/AdminExists", req, opts)
}

func (c *adminServiceClient) GetAdmin(ctx context.Context, req *GetAdminRequest, opts ...grpc.CallOption) (*GetAdminReply, error) {
	return invoke[GetAdminReply](ctx, c.cc, "/blog.AdminService/GetAdmin", req, opts)
}

func (c *adminServiceClient) CreateAdmin(ctx context.Context, req *CreateAdminRequest, opts ...grpc.CallOption) (*CreateAdminReply, error) {
	return invoke[CreateAdminReply](ctx, c.cc, "/blog.AdminService/CreateAdmin", req, opts)
}

func (c *adminServiceClient) EditAdmin(ctx context.Context, req *EditAdminRequest, opts ...grpc.CallOption) (*EditAdminReply, error) {
	return invoke[EditAdminReply](ctx, c.cc, "/blog.AdminService/EditAdmin", req, opts)
}

func (c *adminServiceClient) ListAdmin(ctx context.Context, req *ListAdminRequest, opts ...grpc.CallOption) (*ListAdminReply, error) {
	return invoke[ListAdminReply](ctx, c.cc, "/blog.AdminService/ListAdmin", req, opts)
}

func (c *adminServiceClient) ToggleAdmin(ctx context.Context, req *ToggleAdminRequest, opts ...grpc.CallOption) (*ToggleAdminReply, error) {
	return invoke[ToggleAdminReply](ctx, c.cc, "/blog.AdminService/ToggleAdmin", req, opts)
}

// AdminServiceDesc wires the service methods into a grpc server.
var AdminServiceDesc = grpc.ServiceDesc{
	ServiceName: "blog.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AdminExists",
			Handler: unaryHandler("/blog.AdminService/AdminExists",
				func(srv any, ctx context.Context, req *AdminExistsRequest) (*AdminExistsReply, error) {
					return srv.(AdminServiceServer).AdminExists(ctx, req)
				}),
		},
		{
			MethodName: "GetAdmin",
			Handler: unaryHandler("/blog.AdminService/GetAdmin",
				func(srv any, ctx context.Context, req *GetAdminRequest) (*GetAdminReply, error) {
					return srv.(AdminServiceServer).GetAdmin(ctx, req)
				}),
		},
		{
			MethodName: "CreateAdmin",
			Handler: unaryHandler("/blog.AdminService/CreateAdmin",
				func(srv any, ctx context.Context, req *CreateAdminRequest) (*CreateAdminReply, error) {
					return srv.(AdminServiceServer).CreateAdmin(ctx, req)
				}),
		},
		{
			MethodName: "EditAdmin",
			Handler: unaryHandler("/blog.AdminService/EditAdmin",
				func(srv any, ctx context.Context, req *EditAdminRequest) (*EditAdminReply, error) {
					return srv.(AdminServiceServer).EditAdmin(ctx, req)
				}),
		},
		{
			MethodName: "ListAdmin",
			Handler: unaryHandler("/blog.AdminService/ListAdmin",
				func(srv any, ctx context.Context, req *ListAdminRequest) (*ListAdminReply, error) {
					return srv.(AdminServiceServer).ListAdmin(ctx, req)
				}),
		},
		{
			MethodName: "ToggleAdmin",
			Handler: unaryHandler("/blog.AdminService/ToggleAdmin",
				func(srv any, ctx context.Context, req *ToggleAdminRequest) (*ToggleAdminReply, error) {
					return srv.(AdminServiceServer).ToggleAdmin(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/rpc/admin.go",
}

// RegisterAdminServiceServer registers srv on a grpc server.
func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminServiceDesc, srv)
}
