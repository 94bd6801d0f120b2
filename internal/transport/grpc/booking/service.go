package booking

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "karting.v1.BookingService"

// BookingServiceServer is implemented by Handler. Every message is a
// google.protobuf.Struct; field names are snake_case.
type BookingServiceServer interface {
	CreateBooking(context.Context, *structpb.Struct) (*structpb.Struct, error)
	IssueVoucher(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBooking(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBookings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteBooking(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RegisterClient(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetClient(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListClients(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RegisterKart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetKartAvailability(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListKarts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRates(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEvents(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(BookingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BookingServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(BookingServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes BookingService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateBooking", BookingServiceServer.CreateBooking),
		unary("IssueVoucher", BookingServiceServer.IssueVoucher),
		unary("GetBooking", BookingServiceServer.GetBooking),
		unary("ListBookings", BookingServiceServer.ListBookings),
		unary("DeleteBooking", BookingServiceServer.DeleteBooking),
		unary("RegisterClient", BookingServiceServer.RegisterClient),
		unary("GetClient", BookingServiceServer.GetClient),
		unary("ListClients", BookingServiceServer.ListClients),
		unary("RegisterKart", BookingServiceServer.RegisterKart),
		unary("SetKartAvailability", BookingServiceServer.SetKartAvailability),
		unary("ListKarts", BookingServiceServer.ListKarts),
		unary("ListRates", BookingServiceServer.ListRates),
		unary("ListEvents", BookingServiceServer.ListEvents),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "karting/v1/booking.proto",
}

// RegisterBookingServiceServer registers srv on s.
func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls BookingService methods by name.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with in and returns the decoded reply.
func (c *Client) Call(ctx context.Context, method string, in map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
