package bridge

import (
	"context"
	"fmt"
	"log/slog"

	"zari/internal/domain"
)

// Executor dispatches intents to a running bridge server instead of the
// simulator. Delivery failures are reported to the caller; nothing retries.
type Executor struct {
	client *Client
	logger *slog.Logger
}

func NewExecutor(client *Client, logger *slog.Logger) *Executor {
	return &Executor{client: client, logger: logger}
}

func (e *Executor) Execute(ctx context.Context, in domain.Intent) (string, error) {
	if err := e.client.Send(ctx, in); err != nil {
		return "", fmt.Errorf("controller unreachable: %w", err)
	}
	e.logger.Info("sent to controller", "summary", in.Summary())
	return in.Summary(), nil
}
