package mailer

import (
	"context"
	"log/slog"
)

// LogSender writes mail to the structured log instead of the network.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender() *LogSender {
	return &LogSender{logger: slog.Default()}
}

func (s *LogSender) Send(ctx context.Context, m Mail) error {
	s.logger.InfoContext(ctx, "mail sent",
		slog.String("driver", "log"),
		slog.Any("to", m.To),
		slog.String("subject", m.Subject),
		slog.Int("text_bytes", len(m.Text)),
		slog.Int("html_bytes", len(m.HTML)),
	)
	return nil
}
