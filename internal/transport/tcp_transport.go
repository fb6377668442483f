package transport

import (
	"fmt"
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/vector-ops/miniredis/internal/protocol"
)

// TCPTransport owns one client connection for its whole lifetime: it reads
// raw chunks, drives the line decoder, and replies to every extracted
// request before touching the next one, so responses stay in request order.
type TCPTransport struct {
	conn    net.Conn
	name    string
	handler Handler
	delCh   chan Transport
	done    <-chan struct{}
	dec     protocol.LineDecoder
}

func NewTCPTransport(conn net.Conn, h Handler, delCh chan Transport, done <-chan struct{}) Transport {
	return &TCPTransport{
		conn:    conn,
		name:    uuid.NewString(),
		handler: h,
		delCh:   delCh,
		done:    done,
	}
}

func (t *TCPTransport) Name() string {
	return t.name
}

func (t *TCPTransport) Send(msg []byte) (int, error) {
	return t.conn.Write(msg)
}

// Close implements [Transport].
func (t *TCPTransport) Close() error {
	return t.conn.Close()
}

func (t *TCPTransport) GetRemoteAddress() string {
	return t.conn.RemoteAddr().String()
}

func (t *TCPTransport) GetLocalAddress() string {
	return t.conn.LocalAddr().String()
}

// ReadLoop blocks on the connection until the peer disconnects or a
// transport error occurs. EOF is a clean shutdown, not an error. Either way
// the server is notified so it can drop the peer from its bookkeeping.
func (t *TCPTransport) ReadLoop() error {
	buf := make([]byte, 4096)
	for {
		n, err := t.conn.Read(buf)
		if n > 0 {
			if derr := t.dispatch(buf[:n]); derr != nil {
				t.notifyClosed()
				return derr
			}
		}
		if err == io.EOF {
			t.notifyClosed()
			return nil
		}
		if err != nil {
			t.notifyClosed()
			return err
		}
	}
}

// dispatch feeds one raw chunk to the decoder and answers every complete
// request it yields. A chunk may complete zero, one, or several requests.
// Complete lines are answered even when the chunk also carries an oversized
// unterminated tail; the feed error is surfaced only after the drain.
func (t *TCPTransport) dispatch(chunk []byte) error {
	feedErr := t.dec.Feed(chunk)
	for {
		line, ok := t.dec.Next()
		if !ok {
			return feedErr
		}

		cmd, err := protocol.ParseCommand(line)

		var resp protocol.Response
		switch {
		case err != nil:
			resp = protocol.NewError(err.Error())
		case cmd == nil:
			// blank line, nothing to answer
			continue
		default:
			resp = t.handler.Handle(cmd)
		}

		if _, err := t.Send(resp.Encode()); err != nil {
			return fmt.Errorf("send response: %w", err)
		}
	}
}

func (t *TCPTransport) notifyClosed() {
	select {
	case t.delCh <- t:
	case <-t.done:
	}
}
