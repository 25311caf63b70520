// Package bridge relays JSON-encoded intents arriving over TCP to the single
// shared hardware channel as protocol lines.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"zari/internal/domain"
	"zari/internal/protocol"
)

const (
	// One bounded read per connection; anything past this is dropped.
	readBufferSize = 4096

	// Pause between hardware writes so the firmware's duty cycle is
	// respected when a payload carries several commands.
	defaultPacing = 50 * time.Millisecond
)

// Server accepts concurrent client connections, each delivering one payload
// of newline-delimited JSON intents, and forwards the encoded lines to the
// hardware channel. The channel has exactly one owner (this server) and all
// writes to it are serialized: a connection's whole forwarding pass,
// including pacing delays, completes before another connection's bytes go
// out, so lines from different clients never interleave.
type Server struct {
	hw     io.Writer
	logger *slog.Logger
	pacing time.Duration

	hwMu sync.Mutex
}

func NewServer(hw io.Writer, logger *slog.Logger) *Server {
	return &Server{hw: hw, logger: logger, pacing: defaultPacing}
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.logger.Info("bridge listening", "addr", ln.Addr())
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is cancelled. A failing
// connection never takes the accept loop down with it.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return ctx.Err()
			}
			s.logger.Warn("accept failed", "error", err)
			continue
		}
		s.logger.Info("client connected", "remote", conn.RemoteAddr())
		go s.handleConn(conn)
	}
}

// handleConn runs one connection's life cycle: a single blocking read, then
// forward, then close. There is no session and no acknowledgment back.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if err != nil && err != io.EOF {
		s.logger.Warn("read failed", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	if n == 0 {
		return
	}

	s.forward(buf[:n])
}

// forward parses the payload line by line, best effort: a malformed JSON
// line is skipped without aborting the rest. The hardware mutex is held for
// the whole pass. A hardware write failure abandons this payload only; it is
// not retried and other connections are unaffected.
func (s *Server) forward(payload []byte) {
	s.hwMu.Lock()
	defer s.hwMu.Unlock()

	for _, line := range bytes.Split(payload, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var in domain.Intent
		if err := json.Unmarshal(line, &in); err != nil {
			s.logger.Debug("skipping malformed line", "line", string(line), "error", err)
			continue
		}

		msg := protocol.Encode(in)
		if _, err := s.hw.Write([]byte(msg)); err != nil {
			s.logger.Error("hardware write failed", "error", err)
			return
		}
		s.logger.Debug("forwarded", "line", msg)
		time.Sleep(s.pacing)
	}
}
