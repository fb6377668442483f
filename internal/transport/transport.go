package transport

import "github.com/vector-ops/miniredis/internal/protocol"

// Handler executes one parsed command and produces the reply for it.
type Handler interface {
	Handle(cmd protocol.Command) protocol.Response
}

type Transport interface {
	Name() string
	Send([]byte) (int, error)
	ReadLoop() error
	Close() error
	GetRemoteAddress() string
	GetLocalAddress() string
}
