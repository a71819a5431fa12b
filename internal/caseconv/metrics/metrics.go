// Package metrics holds the Prometheus metrics of the case conversion
// services. Everything registers with the default registry at init.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	coreGrpc "github.com/msto63/toolbox/pkg/core/grpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// summaryObjectives returns the quantiles tracked by every summary.
func summaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.5:  0.050,
		0.9:  0.010,
		0.99: 0.001,
	}
}

var (
	// metricConversions counts converted strings per target case.
	metricConversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolbox_conversions_total",
		Help: "Total number of converted strings",
	}, []string{"case"})

	// metricBatchSize summarizes the number of inputs per batch.
	metricBatchSize = promauto.NewSummary(prometheus.SummaryOpts{
		Name:       "toolbox_batch_size",
		Help:       "Summarizes the number of inputs per batch request",
		Objectives: summaryObjectives(),
	})

	// metricGRPCRequests counts finished RPCs by method and status code.
	metricGRPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolbox_grpc_requests_total",
		Help: "Total number of processed RPCs",
	}, []string{"method", "code"})

	// metricHTTPRequests counts finished HTTP requests by method and status.
	metricHTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolbox_http_requests_total",
		Help: "Total number of processed HTTP requests",
	}, []string{"method", "status"})

	// metricInflight gauges the requests currently in flight per surface.
	metricInflight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "toolbox_requests_inflight",
		Help: "The number of requests currently in flight",
	}, []string{"surface"})

	// metricDuration summarizes request latency per surface in seconds.
	metricDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Name:       "toolbox_request_duration_seconds",
		Help:       "Summarizes the time to serve a request (in seconds)",
		Objectives: summaryObjectives(),
	}, []string{"surface"})
)

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveConversions records n strings converted to caseName
func ObserveConversions(caseName string, n int) {
	metricConversions.WithLabelValues(caseName).Add(float64(n))
}

// ObserveBatch records the size of a batch request
func ObserveBatch(n int) {
	metricBatchSize.Observe(float64(n))
}

// track marks a request in flight and returns the func that finishes it
func track(surface string) func() {
	start := time.Now()
	inflight := metricInflight.WithLabelValues(surface)
	inflight.Inc()
	return func() {
		inflight.Dec()
		metricDuration.WithLabelValues(surface).Observe(time.Since(start).Seconds())
	}
}

// UnaryServerInterceptor records unary RPCs
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		done := track("grpc")
		resp, err := handler(ctx, req)
		done()
		metricGRPCRequests.WithLabelValues(info.FullMethod, status.Code(coreGrpc.ToStatus(err)).String()).Inc()
		return resp, err
	}
}

// StreamServerInterceptor records streaming RPCs once the stream ends
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		done := track("grpc_stream")
		err := handler(srv, ss)
		done()
		metricGRPCRequests.WithLabelValues(info.FullMethod, status.Code(coreGrpc.ToStatus(err)).String()).Inc()
		return err
	}
}

// ObserveHTTP returns the func that records an HTTP request when it ends
func ObserveHTTP(method string) func(status int) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead:
	default:
		method = "other"
	}

	done := track("http")
	return func(status int) {
		done()
		metricHTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	}
}
