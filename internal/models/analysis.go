package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Analysis is a saved deal analysis: the full input payload the projection
// was run with plus a denormalized summary of its headline metrics for list
// views. Payload and Summary are stored as jsonb and passed through opaquely;
// the calculator owns their shape.
type Analysis struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Strategy  string          `json:"strategy"`
	Payload   json.RawMessage `json:"payload"`
	Summary   json.RawMessage `json:"summary,omitempty"`
	Version   *string         `json:"version,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TableName matches the analyses table created at startup.
func (Analysis) TableName() string {
	return "analyses"
}
