package job

import (
	"encoding/json"
	"strings"
	"time"

	"content-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoRecipients   = errs.Mark(errs.New("email job requires at least one recipient"), errs.ErrValidation)
	ErrEmptySubject   = errs.Mark(errs.New("email job requires a subject"), errs.ErrValidation)
	ErrEmptyBody      = errs.Mark(errs.New("email job requires a text or html body"), errs.ErrValidation)
	ErrInvalidPayload = errs.Mark(errs.New("invalid job payload"), errs.ErrValidation)
)

type EmailPayload struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
	// ActionURL is kept for audit; the link itself is already in the body.
	ActionURL string `json:"action_url,omitempty"`
}

func (p EmailPayload) Validate() error {
	recipients := 0
	for _, to := range p.To {
		if strings.TrimSpace(to) != "" {
			recipients++
		}
	}
	if recipients == 0 {
		return ErrNoRecipients
	}
	if strings.TrimSpace(p.Subject) == "" {
		return ErrEmptySubject
	}
	if p.Text == "" && p.HTML == "" {
		return ErrEmptyBody
	}
	return nil
}

type ContentPayload struct {
	ContentID          uuid.UUID `json:"content_id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	Visibility         string    `json:"visibility"`
	PreviousVisibility string    `json:"previous_visibility"`
	ActorID            uuid.UUID `json:"actor_id"`
	OccurredAt         time.Time `json:"occurred_at"`
}

func (p ContentPayload) Validate() error {
	if p.ContentID == uuid.Nil {
		return errs.Mark(errs.New("content job requires a content id"), errs.ErrValidation)
	}
	return nil
}

func EncodePayload(v interface{ Validate() error }) (json.RawMessage, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPayload)
	}
	return b, nil
}

func DecodeEmailPayload(raw json.RawMessage) (EmailPayload, error) {
	var p EmailPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return EmailPayload{}, errs.Mark(err, ErrInvalidPayload)
	}
	return p, p.Validate()
}

func DecodeContentPayload(raw json.RawMessage) (ContentPayload, error) {
	var p ContentPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return ContentPayload{}, errs.Mark(err, ErrInvalidPayload)
	}
	return p, p.Validate()
}
