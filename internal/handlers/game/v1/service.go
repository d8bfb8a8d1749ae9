package v1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "doodle.api.v1.GameService"

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	Summon(context.Context, *SummonRequest) (*SummonResponse, error)
	Equip(context.Context, *EquipRequest) (*EquipResponse, error)
	Unequip(context.Context, *UnequipRequest) (*UnequipResponse, error)
	UpgradeSlot(context.Context, *UpgradeSlotRequest) (*UpgradeSlotResponse, error)
	ChangeArea(context.Context, *ChangeAreaRequest) (*ChangeAreaResponse, error)
	UnlockNextArea(context.Context, *UnlockNextAreaRequest) (*UnlockNextAreaResponse, error)
	ClearSave(context.Context, *ClearSaveRequest) (*ClearSaveResponse, error)
	Simulate(context.Context, *SimulateRequest) (*SimulateResponse, error)
}

// GameServiceDesc describes the game service for grpc.Server registration
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetState", Handler: unaryHandler("GetState", GameServiceServer.GetState)},
		{MethodName: "Summon", Handler: unaryHandler("Summon", GameServiceServer.Summon)},
		{MethodName: "Equip", Handler: unaryHandler("Equip", GameServiceServer.Equip)},
		{MethodName: "Unequip", Handler: unaryHandler("Unequip", GameServiceServer.Unequip)},
		{MethodName: "UpgradeSlot", Handler: unaryHandler("UpgradeSlot", GameServiceServer.UpgradeSlot)},
		{MethodName: "ChangeArea", Handler: unaryHandler("ChangeArea", GameServiceServer.ChangeArea)},
		{MethodName: "UnlockNextArea", Handler: unaryHandler("UnlockNextArea", GameServiceServer.UnlockNextArea)},
		{MethodName: "ClearSave", Handler: unaryHandler("ClearSave", GameServiceServer.ClearSave)},
		{MethodName: "Simulate", Handler: unaryHandler("Simulate", GameServiceServer.Simulate)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "doodle/api/v1/game",
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler[Req, Resp any](
	method string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GameServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GameServiceClient is the client API for the game service
type GameServiceClient interface {
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	Summon(ctx context.Context, in *SummonRequest, opts ...grpc.CallOption) (*SummonResponse, error)
	Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error)
	Unequip(ctx context.Context, in *UnequipRequest, opts ...grpc.CallOption) (*UnequipResponse, error)
	UpgradeSlot(ctx context.Context, in *UpgradeSlotRequest, opts ...grpc.CallOption) (*UpgradeSlotResponse, error)
	ChangeArea(ctx context.Context, in *ChangeAreaRequest, opts ...grpc.CallOption) (*ChangeAreaResponse, error)
	UnlockNextArea(ctx context.Context, in *UnlockNextAreaRequest, opts ...grpc.CallOption) (*UnlockNextAreaResponse, error)
	ClearSave(ctx context.Context, in *ClearSaveRequest, opts ...grpc.CallOption) (*ClearSaveResponse, error)
	Simulate(ctx context.Context, in *SimulateRequest, opts ...grpc.CallOption) (*SimulateResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client that speaks the JSON codec
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	return invoke[GetStateResponse](ctx, c.cc, "GetState", in, opts)
}

func (c *gameServiceClient) Summon(ctx context.Context, in *SummonRequest, opts ...grpc.CallOption) (*SummonResponse, error) {
	return invoke[SummonResponse](ctx, c.cc, "Summon", in, opts)
}

func (c *gameServiceClient) Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error) {
	return invoke[EquipResponse](ctx, c.cc, "Equip", in, opts)
}

func (c *gameServiceClient) Unequip(ctx context.Context, in *UnequipRequest, opts ...grpc.CallOption) (*UnequipResponse, error) {
	return invoke[UnequipResponse](ctx, c.cc, "Unequip", in, opts)
}

func (c *gameServiceClient) UpgradeSlot(ctx context.Context, in *UpgradeSlotRequest, opts ...grpc.CallOption) (*UpgradeSlotResponse, error) {
	return invoke[UpgradeSlotResponse](ctx, c.cc, "UpgradeSlot", in, opts)
}

func (c *gameServiceClient) ChangeArea(ctx context.Context, in *ChangeAreaRequest, opts ...grpc.CallOption) (*ChangeAreaResponse, error) {
	return invoke[ChangeAreaResponse](ctx, c.cc, "ChangeArea", in, opts)
}

func (c *gameServiceClient) UnlockNextArea(ctx context.Context, in *UnlockNextAreaRequest, opts ...grpc.CallOption) (*UnlockNextAreaResponse, error) {
	return invoke[UnlockNextAreaResponse](ctx, c.cc, "UnlockNextArea", in, opts)
}

func (c *gameServiceClient) ClearSave(ctx context.Context, in *ClearSaveRequest, opts ...grpc.CallOption) (*ClearSaveResponse, error) {
	return invoke[ClearSaveResponse](ctx, c.cc, "ClearSave", in, opts)
}

func (c *gameServiceClient) Simulate(ctx context.Context, in *SimulateRequest, opts ...grpc.CallOption) (*SimulateResponse, error) {
	return invoke[SimulateResponse](ctx, c.cc, "Simulate", in, opts)
}
