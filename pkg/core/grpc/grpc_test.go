package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func startTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	cfg := DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0

	server := NewServer(cfg)
	server.SetServing("", true)

	listener, err := server.Listen()
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.StopWithTimeout(ctx)
	})

	return server, listener.Addr().String()
}

func TestServer_AddressBeforeServe(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	server := NewServer(cfg)

	if got := server.Address(); got != "127.0.0.1:0" {
		t.Errorf("Address() before Listen = %v, want 127.0.0.1:0", got)
	}

	listener, err := server.Listen()
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer listener.Close()

	if got := server.Address(); got != listener.Addr().String() {
		t.Errorf("Address() after Listen = %v, want %v", got, listener.Addr().String())
	}
}

func TestServer_HealthAndRequestID(t *testing.T) {
	server, addr := startTestServer(t)

	if server.Address() != addr {
		t.Errorf("Address() = %v, want %v", server.Address(), addr)
	}

	conn, err := Dial(DefaultClientConfig(addr))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = WithRequestID(ctx, "req-123")

	var header metadata.MD
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{}, grpc.Header(&header))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("Status = %v, want SERVING", resp.Status)
	}
	if got := header.Get(RequestIDHeader); len(got) != 1 || got[0] != "req-123" {
		t.Errorf("response %s = %v, want [req-123]", RequestIDHeader, got)
	}
}

func TestServer_NotServing(t *testing.T) {
	server, addr := startTestServer(t)
	server.SetServing("toolbox.caseconv.v1.CaseService", false)

	conn, err := Dial(DefaultClientConfig(addr))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{
		Service: "toolbox.caseconv.v1.CaseService",
	})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Status = %v, want NOT_SERVING", resp.Status)
	}
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{"unknown case", tberror.New("unknown case").WithCode(tberror.CodeUnknownCase), codes.InvalidArgument},
		{"too large", tberror.New("too large").WithCode(tberror.CodeInputTooLarge), codes.ResourceExhausted},
		{"wrapped", fmt.Errorf("outer: %w", tberror.New("bad").WithCode(tberror.CodeInvalidInput)), codes.InvalidArgument},
		{"status passthrough", status.Error(codes.NotFound, "gone"), codes.NotFound},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"plain", errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(ToStatus(tt.err)); got != tt.expected {
				t.Errorf("ToStatus() code = %v, want %v", got, tt.expected)
			}
		})
	}

	if ToStatus(nil) != nil {
		t.Error("ToStatus(nil) should be nil")
	}
}

func TestFromStatus_RoundTrip(t *testing.T) {
	original := tberror.New("unknown case \"title\"").
		WithCode(tberror.CodeUnknownCase).
		WithDetail("case", "title")

	err := FromStatus(ToStatus(original))
	if !tberror.HasCode(err, tberror.CodeUnknownCase) {
		t.Fatalf("FromStatus() = %v, want CodeUnknownCase", err)
	}

	var e *tberror.Error
	if !errors.As(err, &e) {
		t.Fatalf("FromStatus() returned %T", err)
	}
	if e.Message() != original.Message() {
		t.Errorf("Message() = %q, want %q", e.Message(), original.Message())
	}
	if e.Details()["case"] != "title" {
		t.Errorf("Details()[case] = %v, want title", e.Details()["case"])
	}

	plain := status.Error(codes.NotFound, "gone")
	if got := FromStatus(plain); got != plain {
		t.Errorf("FromStatus(plain) = %v, want unchanged", got)
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/test/Panic"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Errorf("code = %v, want Internal", status.Code(err))
	}
}

func TestGetRequestID(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("GetRequestID() = %q, want empty", id)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "from-md"))
	if id := GetRequestID(ctx); id != "from-md" {
		t.Errorf("GetRequestID() = %q, want from-md", id)
	}

	ctx = withIncomingRequestID(context.Background())
	if id := GetRequestID(ctx); len(id) != 36 {
		t.Errorf("generated request ID %q is not a UUID", id)
	}
}
