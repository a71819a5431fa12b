package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/toolbox/internal/caseconv/handler"
	caseServer "github.com/msto63/toolbox/internal/caseconv/server"
	"github.com/msto63/toolbox/internal/caseconv/service"
	"github.com/msto63/toolbox/pkg/core/logging"
	"github.com/msto63/toolbox/pkg/core/version"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	grpcPort int
	httpPort int
	noHTTP   bool
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC and HTTP services",
		Long: `Run the case conversion services.

  gRPC  toolbox.caseconv.v1.CaseService plus grpc.health.v1 (default :9310)
  HTTP  JSON API under /api/v1, /healthz and the /ws WebSocket (default :8310)

Both share one conversion service. SIGINT or SIGTERM stops them gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.grpcPort, "grpc-port", 0, "gRPC port (overrides config)")
	cmd.Flags().IntVar(&opts.httpPort, "http-port", 0, "HTTP port (overrides config)")
	cmd.Flags().BoolVar(&opts.noHTTP, "no-http", false, "run only the gRPC service")

	return cmd
}

func runServe(cmd *cobra.Command, root *rootOptions, opts *serveOptions) error {
	cfg := root.config
	logger := logging.New("toolbox")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := service.NewService(serviceConfig(root))
	if err != nil {
		return err
	}

	// gRPC
	grpcCfg := caseServer.DefaultConfig()
	grpcCfg.Host = cfg.Server.Host
	grpcCfg.Port = cfg.Server.Port
	grpcCfg.EnableReflection = cfg.Server.EnableReflection
	grpcCfg.MaxRecvMsgSize = cfg.Server.MaxRecvMsgSize
	if opts.grpcPort != 0 {
		grpcCfg.Port = opts.grpcPort
	}

	grpcSrv, err := caseServer.New(grpcCfg, svc)
	if err != nil {
		return err
	}
	if err := grpcSrv.StartAsync(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  [+] gRPC CaseService on %s:%d\n", grpcCfg.Host, grpcCfg.Port)

	// HTTP
	var httpSrv *handler.Server
	if !opts.noHTTP {
		httpCfg := handler.DefaultServerConfig()
		httpCfg.Host = cfg.HTTP.Host
		httpCfg.Port = cfg.HTTP.Port
		httpCfg.ReadTimeout = cfg.HTTP.ReadTimeout.Duration
		httpCfg.WriteTimeout = cfg.HTTP.WriteTimeout.Duration
		httpCfg.Handler.Version = version.HTTPAPI
		httpCfg.Handler.CORS = handler.CORSConfig{
			Enabled:        cfg.HTTP.CORS.Enabled,
			AllowedOrigins: cfg.HTTP.CORS.AllowedOrigins,
		}
		if opts.httpPort != 0 {
			httpCfg.Port = opts.httpPort
		}

		httpSrv = handler.NewServer(httpCfg, svc, grpcSrv.HealthRegistry())
		if err := httpSrv.StartAsync(); err != nil {
			stopGRPC(grpcSrv, cfg.Server.ShutdownTimeout.Duration)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  [+] HTTP API on %s:%d\n", httpCfg.Host, httpCfg.Port)
	}

	logger.Info("toolbox services started", "version", version.Toolbox)
	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if httpSrv != nil {
		if err := httpSrv.Stop(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown incomplete", "error", err)
		}
	}
	grpcSrv.Stop(shutdownCtx)

	stats := svc.CacheStats()
	logger.Info("Stopped", "cache_size", stats.Size, "cache_hits", stats.Hits, "cache_hit_rate", stats.HitRate)
	return nil
}

func stopGRPC(srv *caseServer.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	srv.Stop(ctx)
}
