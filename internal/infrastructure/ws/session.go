// Package ws mantiene las sesiones WebSocket vivas que reciben las alertas
// de stock en tiempo real.
package ws

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/salesphere/salesphere-api/internal/application/alert"
)

var _ alert.Session = (*Session)(nil)

// ErrSessionClosed se devuelve al escribir sobre una sesión ya cerrada.
var ErrSessionClosed = errors.New("sesión cerrada")

// Session envuelve una conexión WebSocket. Las escrituras se serializan con
// un mutex porque gorilla/fasthttp no permiten escritores concurrentes.
type Session struct {
	id   string
	conn *websocket.Conn

	mu     sync.Mutex
	closed atomic.Bool
}

// NewSession envuelve la conexión con un identificador propio.
func NewSession(conn *websocket.Conn) *Session {
	return &Session{id: uuid.NewString(), conn: conn}
}

// ID devuelve el identificador de la sesión.
func (s *Session) ID() string { return s.id }

// IsOpen indica si la sesión sigue aceptando mensajes.
func (s *Session) IsOpen() bool { return !s.closed.Load() }

// Send escribe un mensaje de texto en la conexión. Marca la sesión como
// cerrada si la escritura falla para que el fanout la omita después.
func (s *Session) Send(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		s.closed.Store(true)
		return err
	}
	return nil
}

// Close marca la sesión como cerrada y cierra la conexión subyacente.
func (s *Session) Close() error {
	s.closed.Store(true)
	return s.conn.Close()
}
