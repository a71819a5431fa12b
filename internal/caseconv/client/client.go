// Package client is a typed gRPC client for the case conversion service.
package client

import (
	"context"
	"errors"
	"io"
	"time"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/internal/caseconv/api"
	coreGrpc "github.com/msto63/toolbox/pkg/core/grpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client talks to a remote case conversion server
type Client struct {
	conn    *grpc.ClientConn
	cases   api.CaseServiceClient
	health  healthpb.HealthClient
	timeout time.Duration
}

// Dial connects to target with the default client configuration
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	return DialWithConfig(coreGrpc.DefaultClientConfig(target), opts...)
}

// DialWithConfig connects using cfg. cfg.Timeout bounds every call whose
// context has no deadline
func DialWithConfig(cfg coreGrpc.ClientConfig, opts ...grpc.DialOption) (*Client, error) {
	conn, err := coreGrpc.Dial(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:    conn,
		cases:   api.NewCaseServiceClient(conn),
		health:  healthpb.NewHealthClient(conn),
		timeout: cfg.Timeout,
	}, nil
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Convert converts input with the named case. An empty caseName selects the
// server's default
func (c *Client) Convert(ctx context.Context, caseName, input string) (string, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.cases.Convert(ctx, api.NewConvertRequest(caseName, input))
	if err != nil {
		return "", coreGrpc.FromStatus(err)
	}
	return resp.GetValue(), nil
}

// ConvertAll converts input with every case, keyed by case name
func (c *Client) ConvertAll(ctx context.Context, input string) (map[string]string, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.cases.ConvertAll(ctx, wrapperspb.String(input))
	if err != nil {
		return nil, coreGrpc.FromStatus(err)
	}
	return api.StringMap(resp)
}

// ConvertBatch converts every input with the same case, preserving order
func (c *Client) ConvertBatch(ctx context.Context, caseName string, inputs []string) ([]string, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.cases.ConvertBatch(ctx, api.NewBatchRequest(caseName, inputs))
	if err != nil {
		return nil, coreGrpc.FromStatus(err)
	}
	return api.StringList(resp)
}

// ListCases returns the available cases sorted by name
func (c *Client) ListCases(ctx context.Context) ([]api.CaseEntry, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.cases.ListCases(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, coreGrpc.FromStatus(err)
	}
	return api.ParseCaseList(resp)
}

// Check reports whether the case service is serving
func (c *Client) Check(ctx context.Context) (bool, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return false, coreGrpc.FromStatus(err)
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}

// Stream opens a conversion stream. The stream lives until ctx is done or
// CloseSend is called; the client timeout does not apply
func (c *Client) Stream(ctx context.Context) (*Stream, error) {
	stream, err := c.cases.ConvertStream(ctx)
	if err != nil {
		return nil, coreGrpc.FromStatus(err)
	}
	return &Stream{stream: stream}, nil
}

// Stream is an open conversion stream. Responses arrive in request order
type Stream struct {
	stream grpc.BidiStreamingClient[structpb.Struct, structpb.Struct]
}

// Send queues a conversion
func (s *Stream) Send(caseName, input string) error {
	if err := s.stream.Send(api.NewConvertRequest(caseName, input)); err != nil {
		return coreGrpc.FromStatus(err)
	}
	return nil
}

// Recv returns the next result. A failed conversion is returned as a
// *tberror.Error and the stream stays usable; io.EOF marks the end
func (s *Stream) Recv() (api.StreamResult, error) {
	resp, err := s.stream.Recv()
	if errors.Is(err, io.EOF) {
		return api.StreamResult{}, io.EOF
	}
	if err != nil {
		return api.StreamResult{}, coreGrpc.FromStatus(err)
	}
	return api.ParseStreamResponse(resp)
}

// CloseSend signals that no more conversions follow
func (s *Stream) CloseSend() error {
	return s.stream.CloseSend()
}

// IsConversionError reports whether err is a per-message failure reported
// on a stream, as opposed to a broken stream
func IsConversionError(err error) bool {
	var e *tberror.Error
	return errors.As(err, &e)
}
