package domain

import "time"

// ChangeOperation describes a recorded activity operation for a card.
type ChangeOperation string

// ChangeOperation values used by the session activity ledger.
const (
	ChangeOperationCreate ChangeOperation = "create"
	ChangeOperationRename ChangeOperation = "rename"
	ChangeOperationMove   ChangeOperation = "move"
	ChangeOperationDelete ChangeOperation = "delete"
)

// ChangeEvent represents a single activity-log entry for a card.
type ChangeEvent struct {
	ID         int64
	CardID     string
	Operation  ChangeOperation
	Actor      string
	Metadata   map[string]string
	OccurredAt time.Time
}
