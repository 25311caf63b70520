package sim

import (
	"context"
	"log/slog"

	"zari/internal/domain"
)

// Executor applies intents to the simulated home instead of real hardware.
type Executor struct {
	store  *Store
	logger *slog.Logger
}

func NewExecutor(store *Store, logger *slog.Logger) *Executor {
	return &Executor{store: store, logger: logger}
}

func (e *Executor) Execute(_ context.Context, in domain.Intent) (string, error) {
	snapshot := e.store.Apply(in)
	e.logger.Info("simulator updated", "summary", in.Summary())
	e.logger.Debug("home state", "state", snapshot)
	return in.Summary(), nil
}
