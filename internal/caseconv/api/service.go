// ============================================================================
// toolbox - Identifier Case Conversion Toolkit
// ============================================================================
//
// Package:     api
// Description: gRPC service definition for the case conversion service.
//              Messages are protobuf well-known types so no generated code
//              is needed.
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "toolbox.caseconv.v1.CaseService"

const (
	CaseService_Convert_FullMethodName       = "/" + ServiceName + "/Convert"
	CaseService_ConvertAll_FullMethodName    = "/" + ServiceName + "/ConvertAll"
	CaseService_ConvertBatch_FullMethodName  = "/" + ServiceName + "/ConvertBatch"
	CaseService_ListCases_FullMethodName     = "/" + ServiceName + "/ListCases"
	CaseService_ConvertStream_FullMethodName = "/" + ServiceName + "/ConvertStream"
)

// CaseServiceServer is the server API for CaseService.
//
//	Convert:       {case, input}   -> output
//	ConvertAll:    input           -> {case: output, ...}
//	ConvertBatch:  {case, inputs}  -> [output, ...]
//	ListCases:     empty           -> [{name, example}, ...]
//	ConvertStream: {case, input}*  -> {case, output} | {error, code}
type CaseServiceServer interface {
	Convert(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	ConvertAll(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ConvertBatch(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	ListCases(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ConvertStream(grpc.BidiStreamingServer[structpb.Struct, structpb.Struct]) error
}

// UnimplementedCaseServiceServer must be embedded to have forward compatible
// implementations.
type UnimplementedCaseServiceServer struct{}

func (UnimplementedCaseServiceServer) Convert(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Convert not implemented")
}
func (UnimplementedCaseServiceServer) ConvertAll(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConvertAll not implemented")
}
func (UnimplementedCaseServiceServer) ConvertBatch(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConvertBatch not implemented")
}
func (UnimplementedCaseServiceServer) ListCases(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCases not implemented")
}
func (UnimplementedCaseServiceServer) ConvertStream(grpc.BidiStreamingServer[structpb.Struct, structpb.Struct]) error {
	return status.Errorf(codes.Unimplemented, "method ConvertStream not implemented")
}

// RegisterCaseServiceServer registers srv on s
func RegisterCaseServiceServer(s grpc.ServiceRegistrar, srv CaseServiceServer) {
	s.RegisterService(&CaseService_ServiceDesc, srv)
}

func _CaseService_Convert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaseServiceServer).Convert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaseService_Convert_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaseServiceServer).Convert(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaseService_ConvertAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaseServiceServer).ConvertAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaseService_ConvertAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaseServiceServer).ConvertAll(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaseService_ConvertBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaseServiceServer).ConvertBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaseService_ConvertBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaseServiceServer).ConvertBatch(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaseService_ListCases_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaseServiceServer).ListCases(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaseService_ListCases_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaseServiceServer).ListCases(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaseService_ConvertStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(CaseServiceServer).ConvertStream(&grpc.GenericServerStream[structpb.Struct, structpb.Struct]{ServerStream: stream})
}

// CaseService_ServiceDesc is the grpc.ServiceDesc for CaseService
var CaseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Convert",
			Handler:    _CaseService_Convert_Handler,
		},
		{
			MethodName: "ConvertAll",
			Handler:    _CaseService_ConvertAll_Handler,
		},
		{
			MethodName: "ConvertBatch",
			Handler:    _CaseService_ConvertBatch_Handler,
		},
		{
			MethodName: "ListCases",
			Handler:    _CaseService_ListCases_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ConvertStream",
			Handler:       _CaseService_ConvertStream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "toolbox/caseconv/v1/caseconv.proto",
}

// CaseServiceClient is the client API for CaseService
type CaseServiceClient interface {
	Convert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	ConvertAll(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ConvertBatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListCases(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ConvertStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[structpb.Struct, structpb.Struct], error)
}

type caseServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCaseServiceClient creates a client stub on cc
func NewCaseServiceClient(cc grpc.ClientConnInterface) CaseServiceClient {
	return &caseServiceClient{cc}
}

func (c *caseServiceClient) Convert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, CaseService_Convert_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *caseServiceClient) ConvertAll(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CaseService_ConvertAll_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *caseServiceClient) ConvertBatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, CaseService_ConvertBatch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *caseServiceClient) ListCases(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, CaseService_ListCases_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *caseServiceClient) ConvertStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[structpb.Struct, structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &CaseService_ServiceDesc.Streams[0], CaseService_ConvertStream_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[structpb.Struct, structpb.Struct]{ClientStream: stream}, nil
}
