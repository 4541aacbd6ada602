package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/models"
)

// Transport is the write side of a socket. *websocket.Conn satisfies it.
type Transport interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type writeDeadliner interface {
	SetWriteDeadline(t time.Time) error
}

// Session is one authenticated socket. Its room set is guarded by the owning gateway.
type Session struct {
	ID     string
	UserID string
	Role   string

	transport Transport
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	rooms map[string]struct{}
}

func newSession(id string, identity models.Identity, transport Transport, bufferSize int) *Session {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Session{
		ID:        id,
		UserID:    identity.UserID,
		Role:      identity.Role,
		transport: transport,
		send:      make(chan []byte, bufferSize),
		done:      make(chan struct{}),
		rooms:     make(map[string]struct{}),
	}
}

// Identity returns the verified identity the session was opened with
func (s *Session) Identity() models.Identity {
	return models.Identity{UserID: s.UserID, Role: s.Role}
}

// Done is closed once the session has been torn down
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// enqueue never blocks. A full queue or a closed session drops the frame.
func (s *Session) enqueue(frame []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- frame:
		return true
	default:
		logger.Debug("Dropping websocket frame, send buffer full",
			logger.SocketID(s.ID),
			logger.UserID(s.UserID))
		return false
	}
}

// writePump is the only goroutine writing to the transport
func (s *Session) writePump(writeTimeout, pingInterval time.Duration, onError func()) {
	var tick <-chan time.Time
	if pingInterval > 0 {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-s.done:
			return
		case frame := <-s.send:
			if err := s.write(websocket.TextMessage, frame, writeTimeout); err != nil {
				logger.Debug("Websocket write failed",
					logger.SocketID(s.ID),
					logger.Err(err))
				onError()
				return
			}
		case <-tick:
			if err := s.write(websocket.PingMessage, nil, writeTimeout); err != nil {
				onError()
				return
			}
		}
	}
}

func (s *Session) write(messageType int, data []byte, timeout time.Duration) error {
	if d, ok := s.transport.(writeDeadliner); ok && timeout > 0 {
		_ = d.SetWriteDeadline(time.Now().Add(timeout))
	}
	return s.transport.WriteMessage(messageType, data)
}
