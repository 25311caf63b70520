package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"zari/internal/domain"
)

// Client is the control side of the bridge: it dials the server, delivers
// one newline-terminated JSON intent, and closes. The dial timeout lives
// here, on the caller's side; the bridge itself imposes none.
type Client struct {
	addr    string
	timeout time.Duration
}

func NewClient(addr string, timeout time.Duration) *Client {
	return &Client{addr: addr, timeout: timeout}
}

func (c *Client) Send(ctx context.Context, in domain.Intent) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding intent: %w", err)
	}

	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("dialing bridge %s: %w", c.addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("sending intent: %w", err)
	}

	return nil
}
