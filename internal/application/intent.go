package application

import "zari/internal/domain"

// IntentParser turns a transcript into an Intent. Implementations are pure:
// no errors, no side effects, identical output for identical input.
type IntentParser interface {
	Parse(transcript string) domain.Intent
}
