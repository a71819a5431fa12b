package service

import (
	"context"
	"maps"
	"sort"
	"time"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	tblog "github.com/msto63/toolbox/foundation/core/log"
	"github.com/msto63/toolbox/foundation/utils/stringx"
	"github.com/msto63/toolbox/internal/caseconv/metrics"
	"github.com/msto63/toolbox/pkg/core/cache"
	coreGrpc "github.com/msto63/toolbox/pkg/core/grpc"
	"github.com/msto63/toolbox/pkg/core/logging"
)

// ExampleInput is the sample converted for case listings and the self test
const ExampleInput = "theQUICKBrownFox"

// CaseInfo describes one available conversion
type CaseInfo struct {
	Name    string `json:"name"`
	Example string `json:"example"`
}

// ConvertRequest asks for a single conversion. An empty Case selects the
// configured default
type ConvertRequest struct {
	Case  string
	Input string
}

// ConvertResult is the outcome of a single conversion
type ConvertResult struct {
	Case   stringx.Case
	Input  string
	Output string
}

// Config holds service configuration
type Config struct {
	DefaultCase   stringx.Case
	MaxInputBytes int // 0 disables the limit
	BatchLimit    int // 0 disables the limit
	CacheSize     int // ConvertAll results kept, 0 disables the cache
	CacheTTL      time.Duration
}

// DefaultConfig returns the default service configuration
func DefaultConfig() Config {
	return Config{
		DefaultCase:   stringx.CaseKebab,
		MaxInputBytes: 64 * 1024,
		BatchLimit:    1000,
		CacheSize:     1024,
		CacheTTL:      10 * time.Minute,
	}
}

// Service is the case conversion service shared by the gRPC, HTTP and CLI
// surfaces. It adds request limits and logging around the stringx engine
type Service struct {
	logger *logging.Logger
	config Config
	all    *cache.Cache[map[string]string] // nil when disabled
}

// NewService creates a new case conversion service
func NewService(cfg Config) (*Service, error) {
	if !cfg.DefaultCase.IsValid() {
		return nil, tberror.Newf("invalid default case %d", int(cfg.DefaultCase)).
			WithCode(tberror.CodeConfigInvalid).
			WithOperation("service.NewService")
	}
	if cfg.MaxInputBytes < 0 || cfg.BatchLimit < 0 || cfg.CacheSize < 0 || cfg.CacheTTL < 0 {
		return nil, tberror.New("limits must not be negative").
			WithCode(tberror.CodeConfigInvalid).
			WithOperation("service.NewService")
	}

	s := &Service{
		logger: logging.New("caseconv"),
		config: cfg,
	}
	if cfg.CacheSize > 0 {
		// Expired entries are dropped on access, no sweeper needed
		s.all = cache.New[map[string]string](cache.Config{
			MaxItems: cfg.CacheSize,
			TTL:      cfg.CacheTTL,
		})
	}
	return s, nil
}

// SetLogger replaces the service logger
func (s *Service) SetLogger(logger *logging.Logger) {
	s.logger = logger
}

// Config returns the service configuration
func (s *Service) Config() Config {
	return s.config
}

// ResolveCase parses a case name, mapping "" to the default case
func (s *Service) ResolveCase(name string) (stringx.Case, error) {
	if name == "" {
		return s.config.DefaultCase, nil
	}

	kind, err := stringx.ParseCase(name)
	if err != nil {
		return kind, tberror.Wrap(err, "unknown case "+name).WithOperation("service.ResolveCase")
	}
	return kind, nil
}

// Convert performs a single conversion
func (s *Service) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	kind, err := s.ResolveCase(req.Case)
	if err != nil {
		return nil, err
	}
	if err := s.checkInput(req.Input, "service.Convert"); err != nil {
		return nil, err
	}

	output := stringx.Convert(kind, req.Input)
	metrics.ObserveConversions(kind.String(), 1)

	s.logger.Debug("Converted",
		"request_id", coreGrpc.GetRequestID(ctx),
		"case", kind.String(),
		"input_bytes", len(req.Input),
	)

	return &ConvertResult{Case: kind, Input: req.Input, Output: output}, nil
}

// ConvertAll applies every conversion, keyed by case name
func (s *Service) ConvertAll(ctx context.Context, input string) (map[string]string, error) {
	if err := s.checkInput(input, "service.ConvertAll"); err != nil {
		return nil, err
	}

	for _, kind := range stringx.AllCases() {
		metrics.ObserveConversions(kind.String(), 1)
	}

	if s.all != nil {
		if cached, ok := s.all.Get(input); ok {
			s.logger.Debug("Converted to all cases",
				"request_id", coreGrpc.GetRequestID(ctx),
				"input_bytes", len(input),
				"cached", true,
			)
			return maps.Clone(cached), nil
		}
	}

	all := stringx.ConvertAll(input)
	out := make(map[string]string, len(all))
	for kind, value := range all {
		out[kind.String()] = value
	}
	if s.all != nil {
		s.all.Set(input, maps.Clone(out))
	}

	s.logger.Debug("Converted to all cases",
		"request_id", coreGrpc.GetRequestID(ctx),
		"input_bytes", len(input),
		"cached", false,
	)

	return out, nil
}

// CacheStats reports usage of the ConvertAll result cache. The zero value
// is returned when the cache is disabled
func (s *Service) CacheStats() cache.Stats {
	if s.all == nil {
		return cache.Stats{}
	}
	return s.all.Stats()
}

// CacheDetails renders CacheStats for health reports
func (s *Service) CacheDetails() map[string]any {
	stats := s.CacheStats()
	return map[string]any{
		"enabled":  s.all != nil,
		"size":     stats.Size,
		"hits":     stats.Hits,
		"misses":   stats.Misses,
		"hit_rate": stats.HitRate,
	}
}

// ConvertBatch converts every input with the same case, preserving order.
// Cancellation of ctx aborts the batch
func (s *Service) ConvertBatch(ctx context.Context, caseName string, inputs []string) (stringx.Case, []string, error) {
	kind, err := s.ResolveCase(caseName)
	if err != nil {
		return kind, nil, err
	}

	if s.config.BatchLimit > 0 && len(inputs) > s.config.BatchLimit {
		return kind, nil, tberror.Newf("batch of %d inputs exceeds limit %d", len(inputs), s.config.BatchLimit).
			WithCode(tberror.CodeInputTooLarge).
			WithDetail("inputs", len(inputs)).
			WithDetail("limit", s.config.BatchLimit).
			WithOperation("service.ConvertBatch")
	}

	timer := s.logger.StartTimer("convert batch").
		WithLevel(tblog.LevelInfo).
		WithField("request_id", coreGrpc.GetRequestID(ctx)).
		WithField("case", kind.String()).
		WithField("inputs", len(inputs))

	outputs := make([]string, len(inputs))
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return kind, nil, err
		}
		if err := s.checkInput(input, "service.ConvertBatch"); err != nil {
			return kind, nil, err.WithDetail("index", i)
		}
		outputs[i] = stringx.Convert(kind, input)
	}
	metrics.ObserveConversions(kind.String(), len(inputs))
	metrics.ObserveBatch(len(inputs))
	timer.Stop()

	return kind, outputs, nil
}

// ListCases returns every available conversion with an example, sorted by name
func (s *Service) ListCases() []CaseInfo {
	all := stringx.AllCases()
	infos := make([]CaseInfo, 0, len(all))
	for _, kind := range all {
		infos = append(infos, CaseInfo{
			Name:    kind.String(),
			Example: stringx.Convert(kind, ExampleInput),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// SelfTest runs known conversions and reports the first mismatch
func (s *Service) SelfTest(ctx context.Context) error {
	vectors := []struct {
		kind     stringx.Case
		input    string
		expected string
	}{
		{stringx.CaseKebab, ExampleInput, "the-quick-brown-fox"},
		{stringx.CaseSnake, ExampleInput, "the_q_u_i_c_k_brown_fox"},
		{stringx.CaseCamel, "THEQuickBrownFox", "theQuickBrownFox"},
		{stringx.CasePascal, "the - quick * brown# fox", "TheQuickBrownFox"},
	}

	for _, v := range vectors {
		if err := ctx.Err(); err != nil {
			return err
		}
		if got := stringx.Convert(v.kind, v.input); got != v.expected {
			return tberror.Newf("%s(%q) = %q, want %q", v.kind, v.input, got, v.expected).
				WithCode(tberror.CodeInternal).
				WithOperation("service.SelfTest")
		}
	}
	return nil
}

func (s *Service) checkInput(input, operation string) *tberror.Error {
	if s.config.MaxInputBytes > 0 && len(input) > s.config.MaxInputBytes {
		return tberror.Newf("input of %d bytes exceeds limit %d", len(input), s.config.MaxInputBytes).
			WithCode(tberror.CodeInputTooLarge).
			WithDetail("bytes", len(input)).
			WithDetail("limit", s.config.MaxInputBytes).
			WithOperation(operation)
	}
	return nil
}
