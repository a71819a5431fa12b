package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/internal/caseconv/service"
	coreGrpc "github.com/msto63/toolbox/pkg/core/grpc"
	"github.com/msto63/toolbox/pkg/core/logging"
)

const (
	wsPongWait     = 120 * time.Second
	wsPingInterval = 30 * time.Second
	wsWriteWait    = 10 * time.Second

	// JSON escapes a control character as \u00XX, six bytes per input byte
	wsEscapeFactor = 6
	wsEnvelope     = 4096
)

// WebSocketHandler streams conversions over a WebSocket connection
type WebSocketHandler struct {
	service  *service.Service
	logger   *logging.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*wsConn]struct{}
	closed bool
	active sync.WaitGroup
}

// NewWebSocketHandler creates a new WebSocket handler. Cross-origin
// upgrades are accepted only for origins allowed by cors
func NewWebSocketHandler(svc *service.Service, cors CORSConfig) *WebSocketHandler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if cors.Enabled {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || cors.allows(origin)
		}
	}

	return &WebSocketHandler{
		service:  svc,
		logger:   logging.New("caseconv-websocket"),
		upgrader: upgrader,
		conns:    make(map[*wsConn]struct{}),
	}
}

// WSMessage represents a WebSocket request
type WSMessage struct {
	Type    string          `json:"type"`         // "convert", "convert_all", "ping"
	ID      string          `json:"id,omitempty"` // echoed in the response
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSResponse represents a WebSocket response
type WSResponse struct {
	Type    string      `json:"type"` // "result", "pong", "error"
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// wsConn serializes writes on a connection
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return c.conn.WriteJSON(v)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// track registers c; it reports false once CloseAll has run
func (h *WebSocketHandler) track(c *wsConn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.conns[c] = struct{}{}
	h.active.Add(1)
	return true
}

func (h *WebSocketHandler) untrack(c *wsConn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	h.active.Done()
}

// CloseAll sends a going-away close frame to every open connection, closes
// it and waits for the connection handlers to return or ctx to end. Later
// upgrades are closed right away
func (h *WebSocketHandler) CloseAll(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	conns := make([]*wsConn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	deadline := time.Now().Add(wsWriteWait)
	for _, c := range conns {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, deadline)
		c.conn.Close()
	}

	done := make(chan struct{})
	go func() {
		h.active.Wait()
		close(done)
	}()

	select {
	case <-done:
		if len(conns) > 0 {
			h.logger.Info("WebSocket connections closed", "count", len(conns))
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = coreGrpc.NewRequestID()
	}
	ctx := coreGrpc.WithRequestID(context.Background(), requestID)

	h.handleConnection(ctx, conn)
}

// handleConnection answers messages in arrival order until the peer goes away
func (h *WebSocketHandler) handleConnection(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	c := &wsConn{conn: conn}
	if !h.track(c) {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(wsWriteWait))
		return
	}
	defer h.untrack(c)

	ctx, cancel := context.WithCancel(ctx)
	logger := h.logger.With("request_id", coreGrpc.GetRequestID(ctx))
	logger.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if limit := h.service.Config().MaxInputBytes; limit > 0 {
		// oversized inputs must reach the service to get an error reply
		conn.SetReadLimit(int64(limit)*wsEscapeFactor + wsEnvelope)
	}
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.keepAlive(ctx, c)
	}()
	defer wg.Wait()
	defer cancel()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error", "error", err)
			} else {
				logger.Info("WebSocket connection closed")
			}
			return
		}

		var resp WSResponse
		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			resp = wsError("", tberror.CodeInvalidInput, "Invalid message")
		} else {
			resp = h.handleMessage(ctx, msg)
		}

		if err := c.writeJSON(resp); err != nil {
			logger.Warn("WebSocket write error", "error", err)
			return
		}
	}
}

func (h *WebSocketHandler) keepAlive(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

// handleMessage produces the response for one message
func (h *WebSocketHandler) handleMessage(ctx context.Context, msg WSMessage) WSResponse {
	switch msg.Type {
	case "ping":
		return WSResponse{Type: "pong", ID: msg.ID}

	case "convert":
		var payload ConvertRequest
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return wsError(msg.ID, tberror.CodeInvalidInput, "Invalid convert payload")
		}

		result, err := h.service.Convert(ctx, service.ConvertRequest{Case: payload.Case, Input: payload.Input})
		if err != nil {
			return wsServiceError(msg.ID, err)
		}
		return WSResponse{
			Type: "result",
			ID:   msg.ID,
			Payload: ConvertResponse{
				Case:   result.Case.String(),
				Input:  result.Input,
				Output: result.Output,
			},
		}

	case "convert_all":
		var payload ConvertAllRequest
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return wsError(msg.ID, tberror.CodeInvalidInput, "Invalid convert_all payload")
		}

		outputs, err := h.service.ConvertAll(ctx, payload.Input)
		if err != nil {
			return wsServiceError(msg.ID, err)
		}
		return WSResponse{
			Type:    "result",
			ID:      msg.ID,
			Payload: ConvertAllResponse{Input: payload.Input, Outputs: outputs},
		}

	default:
		return wsError(msg.ID, tberror.CodeInvalidInput, "Unknown message type: "+msg.Type)
	}
}

func wsError(id string, code tberror.Code, message string) WSResponse {
	return WSResponse{
		Type:    "error",
		ID:      id,
		Payload: WSErrorPayload{Code: code.String(), Message: message},
	}
}

func wsServiceError(id string, err error) WSResponse {
	code := tberror.GetCode(err)
	if code == tberror.CodeUnknown {
		code = tberror.CodeInternal
	}
	message := err.Error()
	if e, ok := err.(*tberror.Error); ok {
		message = e.Message()
	}
	return wsError(id, code, message)
}
