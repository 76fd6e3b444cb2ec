package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	IsActive        bool       `json:"is_active"`
}

type JobView struct {
	ID             int64           `json:"id"`
	Kind           string          `json:"kind"`
	SubjectID      *uuid.UUID      `json:"subject_id,omitempty"`
	QueueMessageID *string         `json:"queue_message_id,omitempty"`
	EventType      string          `json:"event_type"`
	Status         string          `json:"status"`
	Payload        json.RawMessage `json:"payload"`
	Error          *string         `json:"error,omitempty"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type JobFilters struct {
	Status    *string
	SubjectID *uuid.UUID
}

type JobPage struct {
	Items  []*JobView `json:"items"`
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type ContentView struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Body       string     `json:"body"`
	Visibility string     `json:"visibility"`
	LiveAt     *time.Time `json:"live_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
