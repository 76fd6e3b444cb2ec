package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type JobRow struct {
	ID             int64
	SubjectID      pgtype.UUID
	QueueMessageID pgtype.Text
	EventType      string
	Status         string
	Payload        []byte
	Error          pgtype.Text
	ProcessedAt    pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type ContentRow struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Title      string
	Slug       string
	Body       string
	Visibility string
	LiveAt     pgtype.Timestamptz
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type UserRow struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	Role            string
	EmailVerifiedAt pgtype.Timestamptz
	LastLogin       pgtype.Timestamptz
	IsActive        bool
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}
