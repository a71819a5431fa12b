package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/internal/caseconv/service"
	coreGrpc "github.com/msto63/toolbox/pkg/core/grpc"
	"github.com/msto63/toolbox/pkg/core/health"
	"github.com/msto63/toolbox/pkg/core/logging"
)

// RequestIDHeader carries the request ID on HTTP requests and responses
const RequestIDHeader = "X-Request-ID"

// ConvertRequest represents a single conversion request
type ConvertRequest struct {
	Case  string `json:"case,omitempty"`
	Input string `json:"input"`
}

// ConvertResponse represents a single conversion result
type ConvertResponse struct {
	Case   string `json:"case"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// ConvertAllRequest represents a request for every conversion
type ConvertAllRequest struct {
	Input string `json:"input"`
}

// ConvertAllResponse maps case names to converted values
type ConvertAllResponse struct {
	Input   string            `json:"input"`
	Outputs map[string]string `json:"outputs"`
}

// BatchRequest represents a batch conversion request
type BatchRequest struct {
	Case   string   `json:"case,omitempty"`
	Inputs []string `json:"inputs"`
}

// BatchResponse holds batch results in input order
type BatchResponse struct {
	Case    string   `json:"case"`
	Outputs []string `json:"outputs"`
}

// CasesResponse lists the available conversions
type CasesResponse struct {
	Cases   []service.CaseInfo `json:"cases"`
	Default string             `json:"default"`
	Total   int                `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// CORSConfig controls cross-origin headers
type CORSConfig struct {
	Enabled        bool
	AllowedOrigins []string // "*" allows any origin
}

func (c CORSConfig) allows(origin string) bool {
	if !c.Enabled || origin == "" {
		return false
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Config holds handler configuration
type Config struct {
	Version      string
	CORS         CORSConfig
	MaxBodyBytes int64
}

// DefaultConfig returns default handler configuration
func DefaultConfig() Config {
	return Config{
		Version:      "1.0.0",
		MaxBodyBytes: 1 << 20,
	}
}

// Handler serves the case conversion JSON API
type Handler struct {
	service   *service.Service
	health    *health.Registry
	logger    *logging.Logger
	config    Config
	startTime time.Time
}

// NewHandler creates a new API handler. registry may be nil
func NewHandler(svc *service.Service, registry *health.Registry, cfg Config) *Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}
	if registry == nil {
		registry = health.NewRegistry("caseconv-http", cfg.Version)
		registry.Register(health.ErrorCheck("self-test", svc.SelfTest))
		registry.Register(health.InfoCheck("cache", svc.CacheDetails))
	}

	return &Handler{
		service:   svc,
		health:    registry,
		logger:    logging.New("caseconv-http"),
		config:    cfg,
		startTime: time.Now(),
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = coreGrpc.NewRequestID()
	}
	w.Header().Set(RequestIDHeader, requestID)
	r = r.WithContext(coreGrpc.WithRequestID(r.Context(), requestID))

	h.setCORSHeaders(w, r)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Route requests
	path := strings.TrimSuffix(r.URL.Path, "/")

	switch path {
	case "":
		h.handleRoot(w, r)
	case "/healthz":
		h.handleHealth(w, r)
	case "/api/v1/cases":
		h.handleCases(w, r)
	case "/api/v1/convert":
		h.handleConvert(w, r)
	case "/api/v1/convert/all":
		h.handleConvertAll(w, r)
	case "/api/v1/convert/batch":
		h.handleBatch(w, r)
	default:
		h.writeError(w, r, http.StatusNotFound, tberror.CodeInvalidInput, "Endpoint not found", nil)
	}
}

func (h *Handler) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if !h.config.CORS.allows(origin) {
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
	w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
	w.Header().Add("Vary", "Origin")
}

// handleRoot describes the API
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "toolbox case conversion API",
		"version": h.config.Version,
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
		"endpoints": []string{
			"GET /healthz",
			"GET /api/v1/cases",
			"POST /api/v1/convert",
			"POST /api/v1/convert/all",
			"POST /api/v1/convert/batch",
			"GET /ws",
		},
	})
}

// handleHealth reports the health registry
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report := h.health.Check(ctx)
	h.writeJSON(w, report.HTTPStatus(), report)
}

// handleCases lists the available conversions
func (h *Handler) handleCases(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}

	cases := h.service.ListCases()
	h.writeJSON(w, http.StatusOK, CasesResponse{
		Cases:   cases,
		Default: h.service.Config().DefaultCase.String(),
		Total:   len(cases),
	})
}

// handleConvert performs a single conversion
func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req ConvertRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	result, err := h.service.Convert(r.Context(), service.ConvertRequest{Case: req.Case, Input: req.Input})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ConvertResponse{
		Case:   result.Case.String(),
		Input:  result.Input,
		Output: result.Output,
	})
}

// handleConvertAll applies every conversion
func (h *Handler) handleConvertAll(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req ConvertAllRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	outputs, err := h.service.ConvertAll(r.Context(), req.Input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ConvertAllResponse{Input: req.Input, Outputs: outputs})
}

// handleBatch converts a list of inputs with one case
func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req BatchRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	kind, outputs, err := h.service.ConvertBatch(r.Context(), req.Case, req.Inputs)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, BatchResponse{Case: kind.String(), Outputs: outputs})
}

// Helper methods

func (h *Handler) allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	h.writeError(w, r, http.StatusMethodNotAllowed, tberror.CodeInvalidInput, "Use "+method, nil)
	return false
}

// readJSON decodes the request body into v and writes the error response
// itself when that fails
func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, http.StatusRequestEntityTooLarge, tberror.CodeInputTooLarge,
				"Request body too large", map[string]interface{}{"limit": tooLarge.Limit})
			return false
		}
		h.writeError(w, r, http.StatusBadRequest, tberror.CodeIO, "Failed to read request body", nil)
		return false
	}

	if err := json.Unmarshal(body, v); err != nil {
		h.writeError(w, r, http.StatusBadRequest, tberror.CodeInvalidInput, "Invalid JSON",
			map[string]interface{}{"reason": err.Error()})
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code tberror.Code, message string, details map[string]interface{}) {
	h.writeJSON(w, status, ErrorResponse{
		Error:     message,
		Code:      code.String(),
		Details:   details,
		RequestID: coreGrpc.GetRequestID(r.Context()),
	})
}

// writeServiceError maps a service error to its HTTP status
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.writeError(w, r, http.StatusServiceUnavailable, tberror.CodeServiceUnavailable, err.Error(), nil)
		return
	}

	var e *tberror.Error
	if !errors.As(err, &e) {
		h.logger.Error("Unexpected service error", "request_id", coreGrpc.GetRequestID(r.Context()), "error", err)
		h.writeError(w, r, http.StatusInternalServerError, tberror.CodeInternal, "Internal error", nil)
		return
	}

	h.logger.Debug("Request rejected",
		"request_id", coreGrpc.GetRequestID(r.Context()),
		"code", e.Code().String(),
		"error", err,
	)
	h.writeError(w, r, e.Code().HTTPStatus(), e.Code(), e.Message(), e.Details())
}
