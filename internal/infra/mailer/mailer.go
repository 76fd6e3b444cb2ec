package mailer

import (
	"context"
	"strings"

	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/errs"
)

var (
	ErrRecipientRejected = errs.New("recipient rejected")
	ErrUnknownDriver     = errs.New("unknown mail driver")
)

type Mail struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers one message. It returns an error if any recipient was
// refused, even when others were accepted.
type Sender interface {
	Send(ctx context.Context, m Mail) error
}

func New(cfg config.MailConfig) (Sender, error) {
	switch strings.ToLower(cfg.Driver) {
	case "smtp":
		return NewSMTPSender(cfg), nil
	case "log", "":
		return NewLogSender(), nil
	default:
		return nil, errs.Wrapf(ErrUnknownDriver, "%q", cfg.Driver)
	}
}
