package job

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Kind selects the job family. Families share one shape but live in
// separate tables.
type Kind string

const (
	KindContent Kind = "content"
	KindEmail   Kind = "email"
)

func (k Kind) IsValid() bool {
	return k == KindContent || k == KindEmail
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type EventType string

const (
	EventContentPublished   EventType = "content.published"
	EventContentUnpublished EventType = "content.unpublished"
	EventContentChanged     EventType = "content.changed"

	EventAuthVerifyEmail       EventType = "auth_verify_email"
	EventAuthPasswordReset     EventType = "auth_password_reset"
	EventContentPublishedAlert EventType = "content_published_alert"
)

// Record is a persisted unit of asynchronous work. The row is the single
// source of truth; queue messages only point at it.
type Record struct {
	ID             int64
	Kind           Kind
	SubjectID      *uuid.UUID
	QueueMessageID *string
	EventType      EventType
	Status         Status
	Payload        json.RawMessage
	Error          *string
	ProcessedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Message is the broker payload. It carries only enough to find the row.
type Message struct {
	JobID     int64     `json:"job_id"`
	Kind      Kind      `json:"kind"`
	EventType EventType `json:"event_type"`
}

func (r *Record) Message() Message {
	return Message{JobID: r.ID, Kind: r.Kind, EventType: r.EventType}
}

func (r *Record) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// Draft is what a producer hands over to create a pending row.
type Draft struct {
	Kind      Kind
	SubjectID *uuid.UUID
	EventType EventType
	Payload   json.RawMessage
}

func NewEmailDraft(eventType EventType, subjectID *uuid.UUID, p EmailPayload) (Draft, error) {
	raw, err := EncodePayload(p)
	if err != nil {
		return Draft{}, err
	}
	return Draft{Kind: KindEmail, SubjectID: subjectID, EventType: eventType, Payload: raw}, nil
}

func NewContentDraft(eventType EventType, p ContentPayload) (Draft, error) {
	raw, err := EncodePayload(p)
	if err != nil {
		return Draft{}, err
	}
	id := p.ContentID
	return Draft{Kind: KindContent, SubjectID: &id, EventType: eventType, Payload: raw}, nil
}
