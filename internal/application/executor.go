package application

import (
	"context"

	"zari/internal/domain"
)

// CommandExecutor applies a device-control intent to the home, either by
// mutating the simulator state or by relaying to the hardware bridge. The
// returned string is a human-readable result for the operator.
type CommandExecutor interface {
	Execute(ctx context.Context, in domain.Intent) (string, error)
}
