package server

import (
	"context"
	"net"
	"time"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/internal/caseconv/api"
	"github.com/msto63/toolbox/internal/caseconv/metrics"
	"github.com/msto63/toolbox/internal/caseconv/service"
	coreGrpc "github.com/msto63/toolbox/pkg/core/grpc"
	"github.com/msto63/toolbox/pkg/core/health"
	"github.com/msto63/toolbox/pkg/core/logging"
	"github.com/msto63/toolbox/pkg/core/version"
	"google.golang.org/grpc"
)

// Server is the case conversion gRPC server
type Server struct {
	api.UnimplementedCaseServiceServer
	service   *service.Service
	grpc      *coreGrpc.Server
	health    *health.Registry
	logger    *logging.Logger
	config    Config
	startTime time.Time
}

// Config holds server configuration
type Config struct {
	Host             string
	Port             int
	EnableReflection bool
	MaxRecvMsgSize   int
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           9310,
		MaxRecvMsgSize: 4 * 1024 * 1024,
	}
}

// New creates a new case conversion server around svc. A nil svc gets a
// service with the default configuration
func New(cfg Config, svc *service.Service) (*Server, error) {
	logger := logging.New("caseconv-server")

	if svc == nil {
		var err error
		svc, err = service.NewService(service.DefaultConfig())
		if err != nil {
			return nil, tberror.Wrap(err, "failed to create service").
				WithOperation("server.New")
		}
	}

	// Create gRPC server
	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Host
	grpcCfg.Port = cfg.Port
	grpcCfg.EnableReflection = cfg.EnableReflection
	grpcCfg.MaxRecvMsgSize = cfg.MaxRecvMsgSize

	grpcServer := coreGrpc.NewServer(grpcCfg,
		grpc.ChainUnaryInterceptor(metrics.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(metrics.StreamServerInterceptor()),
	)

	// Create health registry
	healthRegistry := health.NewRegistry("caseconv", version.ServiceVersion("caseconv"))
	healthRegistry.Register(health.ErrorCheck("self-test", svc.SelfTest))
	healthRegistry.Register(health.InfoCheck("cache", svc.CacheDetails))

	server := &Server{
		service:   svc,
		grpc:      grpcServer,
		health:    healthRegistry,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	// Register gRPC service
	api.RegisterCaseServiceServer(grpcServer.GRPCServer(), server)
	server.refreshServing(context.Background())

	return server, nil
}

// refreshServing runs the health checks and publishes the result through the
// standard gRPC health service
func (s *Server) refreshServing(ctx context.Context) {
	report := s.health.Check(ctx)
	serving := report.Status != health.StatusUnhealthy

	s.grpc.SetServing("", serving)
	s.grpc.SetServing(api.ServiceName, serving)

	if !serving {
		s.logger.Warn("Service not serving", "status", string(report.Status))
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting caseconv server", "host", s.config.Host, "port", s.config.Port)
	return s.grpc.Start()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("Starting caseconv server (async)", "host", s.config.Host, "port", s.config.Port)
	return s.grpc.StartAsync()
}

// Serve serves on an existing listener
func (s *Server) Serve(listener net.Listener) error {
	return s.grpc.Serve(listener)
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping caseconv server", "uptime", time.Since(s.startTime).Round(time.Second).String())
	s.grpc.StopWithTimeout(ctx)
}

// GRPCServer returns the underlying gRPC server
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc.GRPCServer()
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Service returns the conversion service
func (s *Server) Service() *service.Service {
	return s.service
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.grpc.Address()
}
