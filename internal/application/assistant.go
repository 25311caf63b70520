package application

import (
	"context"
	"fmt"
	"log/slog"

	"zari/internal/domain"
)

// Assistant wires the pipeline: transcript source → intent parser →
// command executor → notifier. One assistant owns one session's state.
type Assistant struct {
	source   TranscriptSource
	parser   IntentParser
	executor CommandExecutor
	notifier Notifier
	logger   *slog.Logger
}

func NewAssistant(
	source TranscriptSource,
	parser IntentParser,
	executor CommandExecutor,
	notifier Notifier,
	logger *slog.Logger,
) *Assistant {
	return &Assistant{
		source:   source,
		parser:   parser,
		executor: executor,
		notifier: notifier,
		logger:   logger,
	}
}

func (a *Assistant) Run(ctx context.Context) error {
	a.logger.Info("starting transcript source", "source", a.source.Name())
	if err := a.source.Start(ctx); err != nil {
		return fmt.Errorf("starting transcript source: %w", err)
	}
	defer a.source.Stop()

	a.logger.Info("assistant ready, waiting for commands")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := a.processOneCommand(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				a.logger.Error("processing command", "error", err)
			}
		}
	}
}

func (a *Assistant) processOneCommand(ctx context.Context) error {
	text, err := a.source.NextTranscript(ctx)
	if err != nil {
		return fmt.Errorf("getting transcript: %w", err)
	}

	in := a.parser.Parse(text)

	switch in.Kind {
	case domain.IntentNone:
		return nil
	case domain.IntentUnknown:
		a.logger.Warn("unrecognized command, skipping", "text", text)
		return nil
	}

	a.logger.Info("parsed intent",
		"device", in.Device,
		"action", in.Action,
		"location", in.Location,
	)

	result, err := a.executor.Execute(ctx, in)
	if err != nil {
		if notifyErr := a.notifier.Notify(ctx, fmt.Sprintf("Error: %s", err.Error())); notifyErr != nil {
			a.logger.Error("notifying error", "error", notifyErr)
		}
		return fmt.Errorf("executing: %w", err)
	}

	if err := a.notifier.Notify(ctx, result); err != nil {
		a.logger.Error("notifying result", "error", err)
	}

	return nil
}
