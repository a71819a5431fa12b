package cmd

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	caseServer "github.com/msto63/toolbox/internal/caseconv/server"
	"github.com/msto63/toolbox/pkg/core/config"
	"github.com/msto63/toolbox/pkg/core/version"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCaseCmd_Args(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"kebab", []string{"case", "kebab", "theQUICKBrownFox"}, "the-quick-brown-fox\n"},
		{"words joined", []string{"case", "camel", "the", "quick", "brown", "fox"}, "theQuickBrownFox\n"},
		{"alias", []string{"case", "CONSTANT_CASE", "fooBar"}, "FOO_BAR\n"},
		{"pascal", []string{"case", "PascalCase", "the - quick * brown# fox"}, "TheQuickBrownFox\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != tt.expected {
				t.Errorf("output = %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestCaseCmd_Stdin(t *testing.T) {
	out, err := runCmd(t, "fooBar\nbaz qux\n\n", "case", "snake")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "foo_bar\nbaz_qux\n\n" {
		t.Errorf("output = %q", out)
	}
}

func TestCaseCmd_All(t *testing.T) {
	out, err := runCmd(t, "", "case", "--all", "helloWorld")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out)
	}
	for _, want := range []string{"kebab         hello-world", "boa           HELLO_WORLD", "pascal        HelloWorld"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCaseCmd_Errors(t *testing.T) {
	_, err := runCmd(t, "", "case", "title", "x")
	if !tberror.HasCode(err, tberror.CodeUnknownCase) {
		t.Errorf("unknown kind error = %v, want CodeUnknownCase", err)
	}

	if _, err := runCmd(t, ""); err != nil {
		t.Errorf("bare root command error = %v", err)
	}

	if _, err := runCmd(t, "", "case"); err == nil {
		t.Error("missing kind should fail")
	}
}

func TestCaseCmd_ConfigLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[conversion]\ndefault_case = \"snake\"\nmax_input_bytes = 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runCmd(t, "", "--config", path, "case", "kebab", "much too long")
	if !tberror.HasCode(err, tberror.CodeInputTooLarge) {
		t.Errorf("error = %v, want CodeInputTooLarge", err)
	}

	if _, err := runCmd(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "version"); !tberror.HasCode(err, tberror.CodeConfigNotFound) {
		t.Errorf("missing explicit config error = %v, want CodeConfigNotFound", err)
	}
}

func TestCaseCmd_Remote(t *testing.T) {
	srv, err := caseServer.New(caseServer.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to create listener: %v", err)
	}
	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Stop(ctx)
	})

	out, err := runCmd(t, "", "case", "--remote", listener.Addr().String(), "kebab", "fooBar")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "foo-bar\n" {
		t.Errorf("output = %q, want foo-bar", out)
	}

	_, err = runCmd(t, "", "case", "--remote", listener.Addr().String(), "--all", strings.Repeat("x", 70*1024))
	if !tberror.HasCode(err, tberror.CodeInputTooLarge) {
		t.Errorf("remote large input error = %v, want CodeInputTooLarge", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != version.Toolbox+"\n" {
		t.Errorf("output = %q", out)
	}

	out, err = runCmd(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "CaseService: "+version.CaseService) {
		t.Errorf("output = %q", out)
	}
}
