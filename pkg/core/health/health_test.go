package health

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func staticCheck(name string, status Status) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	})
}

func TestNewChecker(t *testing.T) {
	checker := NewChecker("self-test", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Message: "passed"}
	})

	if checker.Name() != "self-test" {
		t.Errorf("Name() = %v, want self-test", checker.Name())
	}
	if result := checker.Check(context.Background()); result.Message != "passed" {
		t.Errorf("Message = %v, want passed", result.Message)
	}
}

func TestErrorCheck(t *testing.T) {
	ok := ErrorCheck("ok", func(ctx context.Context) error { return nil })
	if r := ok.Check(context.Background()); r.Status != StatusHealthy || r.Message != "ok" {
		t.Errorf("healthy result = %+v", r)
	}

	bad := ErrorCheck("bad", func(ctx context.Context) error { return errors.New("mismatch") })
	if r := bad.Check(context.Background()); r.Status != StatusUnhealthy || r.Message != "mismatch" {
		t.Errorf("unhealthy result = %+v", r)
	}
}

func TestInfoCheck(t *testing.T) {
	c := InfoCheck("cache", func() map[string]any { return map[string]any{"size": 3} })

	r := c.Check(context.Background())
	if r.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", r.Status)
	}
	if r.Details["size"] != 3 {
		t.Errorf("Details = %v", r.Details)
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusUnhealthy, StatusDegraded, StatusHealthy}, StatusUnhealthy},
		{"missing status counts as healthy", []Status{""}, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("caseconv", "1.0.0")
			for i, s := range tt.statuses {
				r.Register(staticCheck(string(rune('a'+i)), s))
			}

			report := r.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if len(report.Checks) != len(tt.statuses) {
				t.Errorf("Checks = %d, want %d", len(report.Checks), len(tt.statuses))
			}
		})
	}
}

func TestRegistry_RegisterUnregister(t *testing.T) {
	r := NewRegistry("caseconv", "1.0.0")
	r.Register(staticCheck("b", StatusHealthy))
	r.Register(staticCheck("a", StatusHealthy))
	r.Register(staticCheck("a", StatusUnhealthy)) // replaces

	if names := r.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", names)
	}
	if r.Check(context.Background()).Status != StatusUnhealthy {
		t.Error("replaced checker should be used")
	}

	r.Unregister("a")
	if names := r.Names(); len(names) != 1 || names[0] != "b" {
		t.Errorf("Names() after Unregister = %v", names)
	}
}

func TestRegistry_ResultsCarryNameAndDuration(t *testing.T) {
	r := NewRegistry("caseconv", "1.0.0")
	r.Register(NewChecker("slow", func(ctx context.Context) CheckResult {
		time.Sleep(5 * time.Millisecond)
		return CheckResult{Name: "ignored", Status: StatusHealthy}
	}))

	report := r.Check(context.Background())
	got := report.Checks[0]
	if got.Name != "slow" {
		t.Errorf("Name = %v, want slow", got.Name)
	}
	if got.Duration < 5*time.Millisecond {
		t.Errorf("Duration = %v, want >= 5ms", got.Duration)
	}
	if report.Service != "caseconv" || report.Version != "1.0.0" {
		t.Errorf("report identity = %s %s", report.Service, report.Version)
	}
}

func TestRegistry_ChecksRunConcurrently(t *testing.T) {
	r := NewRegistry("caseconv", "1.0.0")
	var running, peak atomic.Int32

	for _, name := range []string{"a", "b", "c"} {
		r.Register(NewChecker(name, func(ctx context.Context) CheckResult {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			running.Add(-1)
			return CheckResult{Status: StatusHealthy}
		}))
	}

	report := r.Check(context.Background())
	if peak.Load() < 2 {
		t.Errorf("peak concurrency = %d, want >= 2", peak.Load())
	}
	for i, want := range []string{"a", "b", "c"} {
		if report.Checks[i].Name != want {
			t.Errorf("Checks[%d] = %s, want %s", i, report.Checks[i].Name, want)
		}
	}
}

func TestRegistry_CheckWithTimeout(t *testing.T) {
	r := NewRegistry("caseconv", "1.0.0")
	block := make(chan struct{})
	defer close(block)
	r.Register(NewChecker("stuck", func(ctx context.Context) CheckResult {
		<-block
		return CheckResult{Status: StatusHealthy}
	}))

	start := time.Now()
	report := r.CheckWithTimeout(20 * time.Millisecond)
	if time.Since(start) > time.Second {
		t.Fatal("CheckWithTimeout did not return on timeout")
	}
	if report.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", report.Status)
	}
	if !strings.Contains(report.Checks[0].Message, "deadline") {
		t.Errorf("Message = %q, want deadline error", report.Checks[0].Message)
	}
}

func TestReport_HTTPStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusHealthy, http.StatusOK},
		{StatusDegraded, http.StatusOK},
		{StatusUnhealthy, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		report := &Report{Status: tt.status}
		if got := report.HTTPStatus(); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestReport_String(t *testing.T) {
	report := &Report{Service: "caseconv", Version: "1.0.0", Status: StatusHealthy, Uptime: 90 * time.Second}
	want := "caseconv 1.0.0: healthy (0 checks, up 1m30s)"
	if got := report.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
