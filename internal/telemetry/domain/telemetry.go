package domain

import "time"

// Outcome classifies how a command finished.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeValidation Outcome = "validation_error"
	OutcomeNotFound   Outcome = "not_found"
	OutcomeUsage      Outcome = "usage_error"
	OutcomeError      Outcome = "error"
)

// CommandEvent describes one handled assistant command. Command arguments (names, phone
// numbers) are never recorded.
type CommandEvent struct {
	Command   string        `json:"command"`
	Outcome   Outcome       `json:"outcome"`
	ArgCount  int           `json:"argCount"`
	Duration  time.Duration `json:"durationNs"`
	CreatedAt time.Time     `json:"createdAt"`
}
