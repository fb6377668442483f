package server

import (
	"errors"
	"log/slog"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/vector-ops/miniredis/internal/config"
	"github.com/vector-ops/miniredis/internal/storage"
	"github.com/vector-ops/miniredis/internal/transport"
)

type Config struct {
	ListenAddr string
}

type Server struct {
	Config
	id        uuid.UUID
	peers     map[transport.Transport]bool
	addPeerCh chan transport.Transport
	delPeerCh chan transport.Transport
	quitCh    chan struct{}

	kv   *storage.Instrumented
	exec *Executor

	mu        sync.Mutex
	ln        net.Listener
	closeOnce sync.Once
}

func NewServer(cfg Config) *Server {
	if len(cfg.ListenAddr) == 0 {
		cfg.ListenAddr = config.DefaultListenAddr
	}

	kv := storage.NewInstrumented(storage.NewKeyVal())

	return &Server{
		Config:    cfg,
		id:        uuid.New(),
		peers:     make(map[transport.Transport]bool),
		addPeerCh: make(chan transport.Transport),
		delPeerCh: make(chan transport.Transport),
		quitCh:    make(chan struct{}),
		kv:        kv,
		exec:      NewExecutor(kv),
	}
}

// Listen binds the listener. Callers that need the bound address before
// serving (a ":0" listen address) call this first; Start calls it on their
// behalf otherwise.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.quitCh:
		return net.ErrClosed
	default:
	}
	if s.ln != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.ListenAddr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Addr returns the bound listen address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Start binds the listener if Listen has not run yet and blocks in the
// accept loop until the server is closed.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	go s.loop()

	slog.Info("miniredis server running", "listenAddr", s.Addr(), "serverId", s.id)

	return s.acceptLoop()
}

// Close stops the listener and the bookkeeping loop. Open connections wind
// down on their own when their clients disconnect.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.quitCh)
		s.mu.Lock()
		if s.ln != nil {
			err = s.ln.Close()
		}
		s.mu.Unlock()
	})
	return err
}

// loop is the single goroutine that owns the peers map; transports report
// in over the add/del channels so no connection touches another's state.
func (s *Server) loop() {
	for {
		select {
		case <-s.quitCh:
			return
		case peer := <-s.addPeerCh:
			slog.Info("new peer connected", "remoteAddr", peer.GetRemoteAddress(), "peer", peer.Name())
			s.peers[peer] = true
		case peer := <-s.delPeerCh:
			slog.Info("peer disconnected", "remoteAddr", peer.GetRemoteAddress(), "peer", peer.Name())
			delete(s.peers, peer)
		}
	}
}

func (s *Server) acceptLoop() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Error("accept error", "err", err)
			continue
		}

		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	peer := transport.NewTCPTransport(conn, s.exec, s.delPeerCh, s.quitCh)

	select {
	case s.addPeerCh <- peer:
	case <-s.quitCh:
		conn.Close()
		return
	}

	if err := peer.ReadLoop(); err != nil {
		slog.Error("peer read error", "err", err, "remoteAddr", conn.RemoteAddr())
	}
	if err := peer.Close(); err != nil {
		slog.Error("peer close error", "err", err, "remoteAddr", conn.RemoteAddr())
	}
}
