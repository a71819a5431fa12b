package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/foundation/utils/stringx"
	"github.com/msto63/toolbox/pkg/core/cache"
	"github.com/msto63/toolbox/pkg/core/logging"
)

func newTestService(t *testing.T, cfg Config) *Service {
	t.Helper()
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestNewService_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"invalid default case", Config{DefaultCase: stringx.Case(99)}},
		{"negative input limit", Config{MaxInputBytes: -1}},
		{"negative batch limit", Config{BatchLimit: -1}},
		{"negative cache size", Config{CacheSize: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.cfg)
			if !tberror.HasCode(err, tberror.CodeConfigInvalid) {
				t.Errorf("NewService() error = %v, want CodeConfigInvalid", err)
			}
		})
	}
}

func TestService_Convert(t *testing.T) {
	svc := newTestService(t, DefaultConfig())
	ctx := context.Background()

	tests := []struct {
		caseName string
		input    string
		expected string
		kind     stringx.Case
	}{
		{"kebab", "theQUICKBrownFox", "the-quick-brown-fox", stringx.CaseKebab},
		{"snake_case", "theQUICKBrownFox", "the_q_u_i_c_k_brown_fox", stringx.CaseSnake},
		{"CONSTANT", "theQuickBrownFox", "THE_QUICK_BROWN_FOX", stringx.CaseBoa},
		{"camel", "TheQuickBrownFOXX", "theQuickBrownFoxx", stringx.CaseCamel},
		{"", "Hello World", "hello-world", stringx.CaseKebab},
		{"pascal", "", "", stringx.CasePascal},
	}

	for _, tt := range tests {
		t.Run(tt.caseName+"/"+tt.input, func(t *testing.T) {
			result, err := svc.Convert(ctx, ConvertRequest{Case: tt.caseName, Input: tt.input})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if result.Output != tt.expected {
				t.Errorf("Output = %q, want %q", result.Output, tt.expected)
			}
			if result.Case != tt.kind {
				t.Errorf("Case = %v, want %v", result.Case, tt.kind)
			}
		})
	}
}

func TestService_Convert_DefaultCaseFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultCase = stringx.CaseSnake
	svc := newTestService(t, cfg)

	result, err := svc.Convert(context.Background(), ConvertRequest{Input: "helloWorld"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Output != "hello_world" {
		t.Errorf("Output = %q, want hello_world", result.Output)
	}
}

func TestService_Convert_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxInputBytes = 8
	svc := newTestService(t, cfg)
	ctx := context.Background()

	_, err := svc.Convert(ctx, ConvertRequest{Case: "title", Input: "x"})
	if !tberror.HasCode(err, tberror.CodeUnknownCase) {
		t.Errorf("unknown case error = %v, want CodeUnknownCase", err)
	}

	_, err = svc.Convert(ctx, ConvertRequest{Case: "kebab", Input: "way too long input"})
	if !tberror.HasCode(err, tberror.CodeInputTooLarge) {
		t.Errorf("large input error = %v, want CodeInputTooLarge", err)
	}
}

func TestService_ConvertAll(t *testing.T) {
	svc := newTestService(t, DefaultConfig())

	out, err := svc.ConvertAll(context.Background(), "the quick brown fox")
	if err != nil {
		t.Fatalf("ConvertAll() error = %v", err)
	}
	if len(out) != len(stringx.AllCases()) {
		t.Fatalf("ConvertAll() returned %d entries", len(out))
	}
	if out["camel"] != "theQuickBrownFox" {
		t.Errorf("camel = %q", out["camel"])
	}
	if out["boa"] != "THE_QUICK_BROWN_FOX" {
		t.Errorf("boa = %q", out["boa"])
	}
}

func TestService_ConvertAllCache(t *testing.T) {
	svc := newTestService(t, DefaultConfig())
	ctx := context.Background()

	first, err := svc.ConvertAll(ctx, "fooBar")
	if err != nil {
		t.Fatalf("ConvertAll() error = %v", err)
	}
	first["kebab"] = "mutated"

	second, err := svc.ConvertAll(ctx, "fooBar")
	if err != nil {
		t.Fatalf("ConvertAll() error = %v", err)
	}
	if second["kebab"] != "foo-bar" {
		t.Errorf("cached kebab = %q, want foo-bar", second["kebab"])
	}

	stats := svc.CacheStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Size != 1 {
		t.Errorf("CacheStats() = %+v, want 1 hit, 1 miss, size 1", stats)
	}

	cfg := DefaultConfig()
	cfg.CacheSize = 0
	uncached := newTestService(t, cfg)
	if _, err := uncached.ConvertAll(ctx, "fooBar"); err != nil {
		t.Fatalf("ConvertAll() error = %v", err)
	}
	if stats := uncached.CacheStats(); stats != (cache.Stats{}) {
		t.Errorf("CacheStats() without cache = %+v", stats)
	}
}

func TestService_ConvertBatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BatchLimit = 3
	svc := newTestService(t, cfg)
	ctx := context.Background()

	kind, outputs, err := svc.ConvertBatch(ctx, "pascal", []string{"a b", "", "c_d"})
	if err != nil {
		t.Fatalf("ConvertBatch() error = %v", err)
	}
	if kind != stringx.CasePascal {
		t.Errorf("kind = %v, want pascal", kind)
	}
	if strings.Join(outputs, ",") != "AB,,CD" {
		t.Errorf("outputs = %q", outputs)
	}

	_, _, err = svc.ConvertBatch(ctx, "pascal", []string{"1", "2", "3", "4"})
	if !tberror.HasCode(err, tberror.CodeInputTooLarge) {
		t.Errorf("over limit error = %v, want CodeInputTooLarge", err)
	}
}

func TestService_ConvertBatch_LogsDuration(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, DefaultConfig())
	svc.SetLogger(logging.Wrap(logging.NewLogger(logging.LoggerConfig{
		ServiceName: "caseconv",
		Level:       "info",
		Format:      "json",
		Output:      &buf,
	}), "caseconv"))

	if _, _, err := svc.ConvertBatch(context.Background(), "snake", []string{"a b", "c d"}); err != nil {
		t.Fatalf("ConvertBatch() error = %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("want one JSON entry: %v (%q)", err, buf.String())
	}
	if entry["message"] != "convert batch completed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["case"] != "snake" || entry["inputs"] != float64(2) {
		t.Errorf("fields = %v", entry)
	}
	if _, ok := entry["duration_ms"].(float64); !ok {
		t.Errorf("duration_ms missing: %v", entry)
	}

	buf.Reset()
	_, _, err := svc.ConvertBatch(context.Background(), "nope", []string{"a"})
	if err == nil {
		t.Fatal("ConvertBatch() with unknown case should fail")
	}
	if buf.Len() != 0 {
		t.Errorf("failed batch should not log a duration: %q", buf.String())
	}
}

func TestService_ConvertBatch_Cancelled(t *testing.T) {
	svc := newTestService(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.ConvertBatch(ctx, "kebab", []string{"a"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ConvertBatch() error = %v, want context.Canceled", err)
	}
}

func TestService_ListCases(t *testing.T) {
	svc := newTestService(t, DefaultConfig())
	cases := svc.ListCases()

	if len(cases) != 9 {
		t.Fatalf("ListCases() returned %d cases, want 9", len(cases))
	}
	for i := 1; i < len(cases); i++ {
		if cases[i-1].Name > cases[i].Name {
			t.Errorf("cases not sorted: %q before %q", cases[i-1].Name, cases[i].Name)
		}
	}
	if cases[0].Name != "boa" || cases[0].Example != "THE_Q_U_I_C_K_BROWN_FOX" {
		t.Errorf("first case = %+v", cases[0])
	}
}

func TestService_SelfTest(t *testing.T) {
	svc := newTestService(t, DefaultConfig())
	if err := svc.SelfTest(context.Background()); err != nil {
		t.Errorf("SelfTest() error = %v", err)
	}
}
