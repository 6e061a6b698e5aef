package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mementos.v1alpha1.MementoEditorService"

// Method names of the memento editor service
const (
	MethodOpenSession   = "OpenSession"
	MethodUpdateSession = "UpdateSession"
	MethodGetSession    = "GetSession"
	MethodGetTooltip    = "GetTooltip"
	MethodConfirm       = "ConfirmSession"
	MethodCancel        = "CancelSession"
)

// MementoEditorServiceServer is the server API of the memento editor service.
// Requests and responses are google.protobuf.Struct messages.
type MementoEditorServiceServer interface {
	OpenSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTooltip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ConfirmSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CancelSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// FullMethod returns the /service/method path for a method name
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// RegisterMementoEditorServiceServer registers srv on s
func RegisterMementoEditorServiceServer(s grpc.ServiceRegistrar, srv MementoEditorServiceServer) {
	s.RegisterService(&MementoEditorService_ServiceDesc, srv)
}

type unaryMethod func(MementoEditorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MementoEditorServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MementoEditorServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// MementoEditorService_ServiceDesc is the grpc.ServiceDesc for the memento
// editor service
var MementoEditorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MementoEditorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodOpenSession, MementoEditorServiceServer.OpenSession),
		unaryHandler(MethodUpdateSession, MementoEditorServiceServer.UpdateSession),
		unaryHandler(MethodGetSession, MementoEditorServiceServer.GetSession),
		unaryHandler(MethodGetTooltip, MementoEditorServiceServer.GetTooltip),
		unaryHandler(MethodConfirm, MementoEditorServiceServer.ConfirmSession),
		unaryHandler(MethodCancel, MementoEditorServiceServer.CancelSession),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mementos/v1alpha1/memento_editor.proto",
}

// Client calls the memento editor service over a connection
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes method with req and returns the response struct
func (c *Client) Call(ctx context.Context, method string, req map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
