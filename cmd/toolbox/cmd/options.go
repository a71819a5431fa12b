package cmd

import (
	"time"

	"github.com/msto63/toolbox/internal/caseconv/service"
	coreGrpc "github.com/msto63/toolbox/pkg/core/grpc"
)

// serviceConfig maps the conversion section of the configuration
func serviceConfig(root *rootOptions) service.Config {
	cfg := service.DefaultConfig()
	cfg.DefaultCase = root.config.DefaultCase()
	cfg.MaxInputBytes = root.config.Conversion.MaxInputBytes
	cfg.BatchLimit = root.config.Conversion.BatchLimit
	cfg.CacheSize = root.config.Conversion.CacheSize
	cfg.CacheTTL = root.config.Conversion.CacheTTL.Duration
	return cfg
}

func clientConfig(target string, timeout time.Duration) coreGrpc.ClientConfig {
	cfg := coreGrpc.DefaultClientConfig(target)
	cfg.Timeout = timeout
	return cfg
}
