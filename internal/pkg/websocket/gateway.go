package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/jwt"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/models"
)

var (
	// ErrMissingCredential is returned when the handshake carries no bearer token
	ErrMissingCredential = errors.New("missing bearer credential")
	// ErrGatewayClosed is returned when a session is registered after Shutdown
	ErrGatewayClosed = errors.New("gateway is shut down")
)

// MessageHandler processes one inbound frame. Frames of a session are handled sequentially.
type MessageHandler func(ctx context.Context, s *Session, data []byte)

type controlWriter interface {
	WriteControl(messageType int, data []byte, deadline time.Time) error
}

// Gateway owns every live socket, the user presence index and room membership
type Gateway struct {
	verifier jwt.Verifier
	cfg      models.GatewayConfig
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*Session
	users    map[string]map[string]*Session
	rooms    map[string]map[string]*Session
	closed   bool
}

// NewGateway creates a gateway verifying handshakes with verifier
func NewGateway(verifier jwt.Verifier, cfg models.GatewayConfig) *Gateway {
	g := &Gateway{
		verifier: verifier,
		cfg:      cfg,
		sessions: make(map[string]*Session),
		users:    make(map[string]map[string]*Session),
		rooms:    make(map[string]map[string]*Session),
	}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     g.checkOrigin,
	}
	return g
}

func (g *Gateway) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(g.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range g.cfg.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Authenticate extracts the bearer credential from the handshake and verifies it.
// The token query parameter takes precedence over the Authorization header.
func (g *Gateway) Authenticate(r *http.Request) (models.Identity, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		authHeader := r.Header.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
	}
	if token == "" {
		return models.Identity{}, ErrMissingCredential
	}
	return g.verifier.Verify(token)
}

// HandleConnection authenticates, upgrades and serves one socket until it closes.
// A failed authentication is answered with a bare 401 and no upgrade.
func (g *Gateway) HandleConnection(c echo.Context, handle MessageHandler) error {
	identity, err := g.Authenticate(c.Request())
	if err != nil {
		logger.Warn("Rejected websocket handshake",
			logger.String("remote_ip", c.RealIP()),
			logger.Err(err))
		return c.NoContent(http.StatusUnauthorized)
	}

	conn, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already written the error response
		logger.Warn("Websocket upgrade failed",
			logger.UserID(identity.UserID),
			logger.Err(err))
		return nil
	}

	s, err := g.Register(identity, conn)
	if err != nil {
		_ = conn.Close()
		return nil
	}
	defer g.Disconnect(s)

	if g.cfg.MaxMessageBytes > 0 {
		conn.SetReadLimit(g.cfg.MaxMessageBytes)
	}
	if g.cfg.PongTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(g.cfg.PongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(g.cfg.PongTimeout))
		})
	}

	ctx := c.Request().Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Websocket closed unexpectedly",
					logger.SocketID(s.ID),
					logger.UserID(s.UserID),
					logger.Err(err))
			}
			return nil
		}
		g.dispatch(ctx, s, data, handle)
	}
}

// dispatch runs the handler for one frame and keeps a panic from killing the read loop
func (g *Gateway) dispatch(ctx context.Context, s *Session, data []byte, handle MessageHandler) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic while handling websocket message",
				logger.SocketID(s.ID),
				logger.UserID(s.UserID),
				logger.Any("panic", r))
			g.SendError(s, constants.ErrorInternal, "Operation failed")
		}
	}()
	handle(ctx, s, data)
}

// Register adds a session for an already established transport and starts its writer.
// The session automatically joins its user room.
func (g *Gateway) Register(identity models.Identity, transport Transport) (*Session, error) {
	s := newSession(uuid.NewString(), identity, transport, g.cfg.SendBufferSize)

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil, ErrGatewayClosed
	}
	g.sessions[s.ID] = s
	sockets, ok := g.users[s.UserID]
	if !ok {
		sockets = make(map[string]*Session)
		g.users[s.UserID] = sockets
	}
	sockets[s.ID] = s
	g.joinLocked(s, constants.UserRoom(s.UserID))
	g.mu.Unlock()

	go s.writePump(g.cfg.WriteTimeout, g.cfg.PingInterval, func() { g.Disconnect(s) })

	logger.Info("Websocket session opened",
		logger.SocketID(s.ID),
		logger.UserID(s.UserID),
		logger.String("role", s.Role))
	return s, nil
}

// Disconnect tears a session down exactly once: it leaves every room, leaves the
// presence index and closes the transport. Safe to call from any goroutine.
func (g *Gateway) Disconnect(s *Session) {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		g.mu.Lock()
		for room := range s.rooms {
			g.leaveLocked(s, room)
		}
		delete(g.sessions, s.ID)
		if sockets, ok := g.users[s.UserID]; ok {
			delete(sockets, s.ID)
			if len(sockets) == 0 {
				delete(g.users, s.UserID)
			}
		}
		close(s.done)
		g.mu.Unlock()

		_ = s.transport.Close()

		logger.Info("Websocket session closed",
			logger.SocketID(s.ID),
			logger.UserID(s.UserID))
	})
}

// Shutdown sends a going-away close frame to every session and disconnects it
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closed = true
	sessions := make([]*Session, 0, len(g.sessions))
	for _, s := range g.sessions {
		sessions = append(sessions, s)
	}
	g.mu.Unlock()

	closeFrame := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, s := range sessions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cw, ok := s.transport.(controlWriter); ok {
			_ = cw.WriteControl(websocket.CloseMessage, closeFrame, time.Now().Add(time.Second))
		}
		g.Disconnect(s)
	}

	logger.Info("Websocket gateway shut down", logger.Int("sessions", len(sessions)))
	return nil
}

// JoinRoom adds the session to a room. Joining twice is a no-op.
func (g *Gateway) JoinRoom(s *Session, room string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[s.ID]; !ok {
		return
	}
	g.joinLocked(s, room)
}

// LeaveRoom removes the session from a room
func (g *Gateway) LeaveRoom(s *Session, room string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leaveLocked(s, room)
}

// JoinTrip joins the session to the trip room and returns the room name
func (g *Gateway) JoinTrip(s *Session, tripID string) string {
	room := constants.TripRoom(tripID)
	g.JoinRoom(s, room)
	return room
}

// LeaveTrip removes the session from the trip room
func (g *Gateway) LeaveTrip(s *Session, tripID string) {
	g.LeaveRoom(s, constants.TripRoom(tripID))
}

func (g *Gateway) joinLocked(s *Session, room string) {
	members, ok := g.rooms[room]
	if !ok {
		members = make(map[string]*Session)
		g.rooms[room] = members
	}
	members[s.ID] = s
	s.rooms[room] = struct{}{}
}

func (g *Gateway) leaveLocked(s *Session, room string) {
	delete(s.rooms, room)
	members, ok := g.rooms[room]
	if !ok {
		return
	}
	delete(members, s.ID)
	if len(members) == 0 {
		delete(g.rooms, room)
	}
}

// Rooms returns the rooms the session is currently in
func (g *Gateway) Rooms(s *Session) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rooms := make([]string, 0, len(s.rooms))
	for room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// BroadcastToRoom queues an event for every member of room and returns how many sessions accepted it.
// Delivery is best effort.
func (g *Gateway) BroadcastToRoom(room, event string, data interface{}) int {
	frame, err := encodeFrame(event, data)
	if err != nil {
		logger.Error("Failed to encode websocket broadcast",
			logger.String("room", room),
			logger.String("event", event),
			logger.Err(err))
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	delivered := 0
	for _, s := range g.rooms[room] {
		if s.enqueue(frame) {
			delivered++
		}
	}
	return delivered
}

// EmitToUser queues an event for every socket of a user
func (g *Gateway) EmitToUser(userID, event string, data interface{}) int {
	return g.BroadcastToRoom(constants.UserRoom(userID), event, data)
}

// Send queues an event for a single session
func (g *Gateway) Send(s *Session, event string, data interface{}) error {
	frame, err := encodeFrame(event, data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}
	if !s.enqueue(frame) {
		return fmt.Errorf("session %s is not accepting messages", s.ID)
	}
	return nil
}

// SendError queues an error frame for a single session
func (g *Gateway) SendError(s *Session, code, message string) {
	if err := g.Send(s, constants.EventError, models.WSErrorMessage{Code: code, Message: message}); err != nil {
		logger.Debug("Failed to send websocket error frame",
			logger.SocketID(s.ID),
			logger.Err(err))
	}
}

// SendCategorizedError logs err in full and sends the client only what its severity allows
func (g *Gateway) SendCategorizedError(s *Session, err error, code string, severity constants.ErrorSeverity) {
	logger.Warn("WebSocket operation failed",
		logger.UserID(s.UserID),
		logger.String("error_code", code),
		logger.String("severity", severity.String()),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		g.SendError(s, code, err.Error())
	case constants.ErrorSeveritySecurity:
		g.SendError(s, code, "Access denied")
	default:
		g.SendError(s, code, "Operation failed")
	}
}

// IsUserOnline reports whether the user has at least one live socket
func (g *Gateway) IsUserOnline(userID string) bool {
	return g.UserSocketCount(userID) > 0
}

// UserSocketCount returns the number of live sockets of a user
func (g *Gateway) UserSocketCount(userID string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.users[userID])
}

// RoomSize returns the number of sessions in a room
func (g *Gateway) RoomSize(room string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms[room])
}

// SessionCount returns the number of live sessions
func (g *Gateway) SessionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.sessions)
}

func encodeFrame(event string, data interface{}) ([]byte, error) {
	msg := models.WSMessage{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		msg.Data = raw
	}
	return json.Marshal(msg)
}
