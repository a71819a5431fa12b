package server

import (
	"context"
	"errors"
	"io"

	"github.com/msto63/toolbox/internal/caseconv/api"
	"github.com/msto63/toolbox/internal/caseconv/service"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Ensure Server implements CaseServiceServer
var _ api.CaseServiceServer = (*Server)(nil)

// Convert implements CaseServiceServer.Convert
func (s *Server) Convert(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	caseName, input, err := api.ParseConvertRequest(req)
	if err != nil {
		return nil, err
	}

	result, err := s.service.Convert(ctx, service.ConvertRequest{Case: caseName, Input: input})
	if err != nil {
		s.logger.Warn("Convert failed", "case", caseName, "error", err)
		return nil, err
	}

	return wrapperspb.String(result.Output), nil
}

// ConvertAll implements CaseServiceServer.ConvertAll
func (s *Server) ConvertAll(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	all, err := s.service.ConvertAll(ctx, req.GetValue())
	if err != nil {
		s.logger.Warn("ConvertAll failed", "error", err)
		return nil, err
	}

	return api.NewStringMap(all), nil
}

// ConvertBatch implements CaseServiceServer.ConvertBatch
func (s *Server) ConvertBatch(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	caseName, inputs, err := api.ParseBatchRequest(req)
	if err != nil {
		return nil, err
	}

	_, outputs, err := s.service.ConvertBatch(ctx, caseName, inputs)
	if err != nil {
		s.logger.Warn("ConvertBatch failed", "case", caseName, "inputs", len(inputs), "error", err)
		return nil, err
	}

	return api.NewStringList(outputs), nil
}

// ListCases implements CaseServiceServer.ListCases
func (s *Server) ListCases(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	cases := s.service.ListCases()

	entries := make([]api.CaseEntry, len(cases))
	for i, c := range cases {
		entries[i] = api.CaseEntry{Name: c.Name, Example: c.Example}
	}
	return api.NewCaseList(entries), nil
}

// ConvertStream implements CaseServiceServer.ConvertStream. Each request is
// answered in order; a failed conversion yields an error response and the
// stream stays open
func (s *Server) ConvertStream(stream grpc.BidiStreamingServer[structpb.Struct, structpb.Struct]) error {
	ctx := stream.Context()
	count := 0

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("Stream closed by client", "messages", count)
			return nil
		}
		if err != nil {
			return err
		}
		count++

		if err := stream.Send(s.convertStreamMessage(ctx, req)); err != nil {
			return err
		}
	}
}

func (s *Server) convertStreamMessage(ctx context.Context, req *structpb.Struct) *structpb.Struct {
	caseName, input, err := api.ParseConvertRequest(req)
	if err != nil {
		return api.NewStreamError(err)
	}

	result, err := s.service.Convert(ctx, service.ConvertRequest{Case: caseName, Input: input})
	if err != nil {
		return api.NewStreamError(err)
	}
	return api.NewStreamResult(api.StreamResult{
		Case:   result.Case.String(),
		Input:  input,
		Output: result.Output,
	})
}
