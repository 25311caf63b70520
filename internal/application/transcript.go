package application

import "context"

// TranscriptSource supplies plain UTF-8 transcripts from the upstream
// speech-to-text collaborator. The pipeline makes no assumption about their
// accuracy or language; an empty string is a valid transcript.
type TranscriptSource interface {
	Start(ctx context.Context) error
	Stop() error
	NextTranscript(ctx context.Context) (string, error)
	Name() string
}
