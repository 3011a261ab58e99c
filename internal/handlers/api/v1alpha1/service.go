package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// TableServiceName is the fully qualified gRPC service name
const TableServiceName = "onenight.api.v1alpha1.TableService"

// Table service methods
const (
	MethodCreateTable   = "CreateTable"
	MethodRedeal        = "Redeal"
	MethodGetTable      = "GetTable"
	MethodDeleteTable   = "DeleteTable"
	MethodViewCard      = "ViewCard"
	MethodSwapPlayers   = "SwapPlayers"
	MethodSwapCenter    = "SwapCenter"
	MethodEndNight      = "EndNight"
	MethodAdvanceTurn   = "AdvanceTurn"
	MethodGetNightSteps = "GetNightSteps"
	MethodCopyRole      = "CopyRole"
	MethodRunNight      = "RunNight"
	MethodResolveVote   = "ResolveVote"
	MethodListRounds    = "ListRounds"
)

// TableServiceServer is the server API for the table service. Every request
// and response is a google.protobuf.Struct.
type TableServiceServer interface {
	CreateTable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Redeal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetTable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteTable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ViewCard(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SwapPlayers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SwapCenter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	EndNight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	AdvanceTurn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetNightSteps(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CopyRole(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RunNight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ResolveVote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListRounds(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(TableServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + TableServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TableServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TableServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// TableServiceDesc describes the table service for grpc.Server
var TableServiceDesc = grpc.ServiceDesc{
	ServiceName: TableServiceName,
	HandlerType: (*TableServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodCreateTable, TableServiceServer.CreateTable),
		unaryHandler(MethodRedeal, TableServiceServer.Redeal),
		unaryHandler(MethodGetTable, TableServiceServer.GetTable),
		unaryHandler(MethodDeleteTable, TableServiceServer.DeleteTable),
		unaryHandler(MethodViewCard, TableServiceServer.ViewCard),
		unaryHandler(MethodSwapPlayers, TableServiceServer.SwapPlayers),
		unaryHandler(MethodSwapCenter, TableServiceServer.SwapCenter),
		unaryHandler(MethodEndNight, TableServiceServer.EndNight),
		unaryHandler(MethodAdvanceTurn, TableServiceServer.AdvanceTurn),
		unaryHandler(MethodGetNightSteps, TableServiceServer.GetNightSteps),
		unaryHandler(MethodCopyRole, TableServiceServer.CopyRole),
		unaryHandler(MethodRunNight, TableServiceServer.RunNight),
		unaryHandler(MethodResolveVote, TableServiceServer.ResolveVote),
		unaryHandler(MethodListRounds, TableServiceServer.ListRounds),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterTableServiceServer registers srv with s
func RegisterTableServiceServer(s grpc.ServiceRegistrar, srv TableServiceServer) {
	s.RegisterService(&TableServiceDesc, srv)
}

// TableServiceClient calls the table service by method name
type TableServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTableServiceClient creates a client on cc
func NewTableServiceClient(cc grpc.ClientConnInterface) *TableServiceClient {
	return &TableServiceClient{cc: cc}
}

// Call invokes one table service method
func (c *TableServiceClient) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+TableServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
