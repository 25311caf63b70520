package application

import "context"

// Notifier delivers command results and errors to the operator.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// NoopNotifier is the default when no notification backend is configured.
type NoopNotifier struct{}

func (n *NoopNotifier) Notify(_ context.Context, _ string) error {
	return nil
}
