package user

import (
	"regexp"
	"strings"

	"content-dispatch/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrInvalidRole     = errs.Mark(errs.New("invalid role"), errs.ErrValidation)
	ErrPasswordTooWeak = errs.Mark(errs.New("password must be at least 8 characters long"), errs.ErrValidation)
	ErrPasswordTooLong = errs.Mark(errs.New("password must be at most 72 bytes"), errs.ErrValidation)
)

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

// ReconstructEmail wraps an address that was validated before it was stored.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > maxPasswordBytes {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
