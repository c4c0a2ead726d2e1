// ABOUTME: WebSocket input source
// ABOUTME: Adapts a binary websocket stream to an io.ReadCloser
package source

import (
	"fmt"
	"io"
	"log"

	"github.com/gorilla/websocket"
)

// WebSocket presents a stream of binary websocket messages as a continuous
// byte source. Text and control messages are skipped; a normal close from
// the peer reads as end-of-stream.
type WebSocket struct {
	conn *websocket.Conn
	rest []byte
}

// Dial connects to a websocket stream endpoint.
func Dial(rawURL string) (*WebSocket, error) {
	log.Printf("Connecting to %s", rawURL)

	conn, _, err := websocket.DefaultDialer.Dial(rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial failed: %w", err)
	}

	return &WebSocket{conn: conn}, nil
}

// Read fills p from the message stream.
func (s *WebSocket) Read(p []byte) (int, error) {
	for len(s.rest) == 0 {
		msgType, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return 0, io.EOF
			}
			return 0, err
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		s.rest = msg
	}

	n := copy(p, s.rest)
	s.rest = s.rest[n:]
	return n, nil
}

// Close tears the connection down.
func (s *WebSocket) Close() error {
	// Best effort goodbye; the peer may already be gone
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return s.conn.Close()
}
