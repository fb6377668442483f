package transport

import (
	"bytes"

	"github.com/google/uuid"
	"github.com/vector-ops/miniredis/internal/protocol"
)

// MockTransport runs the line protocol end to end in memory. Send plays the
// client role, pushing raw request bytes through the same decode path the
// TCP transport uses; Read drains whatever the handler replied so far.
type MockTransport struct {
	name    string
	handler Handler
	dec     protocol.LineDecoder
	replies bytes.Buffer
}

func NewMockTransport(h Handler) *MockTransport {
	return &MockTransport{
		name:    uuid.NewString(),
		handler: h,
	}
}

func (t *MockTransport) Name() string {
	return t.name
}

func (t *MockTransport) Send(msg []byte) (int, error) {
	feedErr := t.dec.Feed(msg)
	for {
		line, ok := t.dec.Next()
		if !ok {
			return len(msg), feedErr
		}

		cmd, err := protocol.ParseCommand(line)
		switch {
		case err != nil:
			t.replies.Write(protocol.NewError(err.Error()).Encode())
		case cmd == nil:
		default:
			t.replies.Write(t.handler.Handle(cmd).Encode())
		}
	}
}

// Read returns the accumulated response bytes and resets the buffer.
func (t *MockTransport) Read() ([]byte, error) {
	out := make([]byte, t.replies.Len())
	copy(out, t.replies.Bytes())
	t.replies.Reset()
	return out, nil
}

// ReadLoop implements [Transport].
func (t *MockTransport) ReadLoop() error {
	return nil
}

// Close implements [Transport].
func (t *MockTransport) Close() error {
	return nil
}

func (t *MockTransport) GetRemoteAddress() string {
	return "mock-address"
}

func (t *MockTransport) GetLocalAddress() string {
	return "mock-address"
}
