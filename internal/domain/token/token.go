package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"content-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidType = errs.Mark(errs.New("invalid action token type"), errs.ErrValidation)
	ErrInvalidTTL  = errs.Mark(errs.New("action token ttl must be positive"), errs.ErrValidation)
	ErrEmptyToken  = errs.Mark(errs.New("action token is empty"), errs.ErrInvalidOrExpiredToken)
)

// SecretBytes is the entropy of a raw action token.
const SecretBytes = 32

type Type string

const (
	TypeEmailVerification Type = "email_verification"
	TypePasswordReset     Type = "password_reset"
)

func (t Type) IsValid() bool {
	return t == TypeEmailVerification || t == TypePasswordReset
}

// ActionToken is the persisted side of a single-use secret. The raw value is
// never stored.
type ActionToken struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TokenHash   string
	Type        Type
	ExpiresAt   time.Time
	UsedAt      *time.Time
	RequestedIP *string
	Metadata    map[string]any
	CreatedAt   time.Time
}

func (t *ActionToken) IsActive(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}

// Issued pairs a new record with the raw secret that must be handed to the
// user exactly once.
type Issued struct {
	Token ActionToken
	Raw   string
}

func New(userID uuid.UUID, typ Type, ttl time.Duration, requestedIP *string, now time.Time) (*Issued, error) {
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	raw, err := GenerateRaw()
	if err != nil {
		return nil, err
	}

	return &Issued{
		Token: ActionToken{
			ID:          uuid.New(),
			UserID:      userID,
			TokenHash:   Hash(raw),
			Type:        typ,
			ExpiresAt:   now.Add(ttl),
			RequestedIP: requestedIP,
			Metadata:    map[string]any{},
			CreatedAt:   now,
		},
		Raw: raw,
	}, nil
}

func GenerateRaw() (string, error) {
	buf := make([]byte, SecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash is deterministic so lookups can match on the stored digest.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
