package mailer

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strings"
	"time"

	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	dialTimeout    = 10 * time.Second
	defaultTimeout = 30 * time.Second
)

// SMTPSender speaks SMTP directly so it can refuse the whole message when a
// single RCPT is rejected. Sends are throttled to the configured rate.
type SMTPSender struct {
	addr     string
	host     string
	from     string
	username string
	password string
	timeout  time.Duration
	limiter  *rate.Limiter
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		host:     cfg.Host,
		from:     cfg.From,
		username: cfg.Username,
		password: cfg.Password,
		timeout:  timeout,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

func (s *SMTPSender) Send(ctx context.Context, m Mail) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "mail rate limit wait")
	}
	if m.From == "" {
		m.From = s.from
	}

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return errs.Wrap(err, "smtp dial")
	}
	_ = conn.SetDeadline(s.deadline(ctx))
	// unblock any pending read or write once ctx is cancelled
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return errs.Wrap(err, "smtp handshake")
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return errs.Wrap(err, "smtp starttls")
		}
	}
	if s.username != "" {
		if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return errs.Wrap(err, "smtp auth")
		}
	}

	if err := c.Mail(m.From); err != nil {
		return errs.Wrap(err, "smtp MAIL FROM")
	}
	var rejected []string
	for _, rcpt := range m.To {
		if err := c.Rcpt(rcpt); err != nil {
			rejected = append(rejected, rcpt+": "+err.Error())
		}
	}
	if len(rejected) > 0 {
		_ = c.Reset()
		return errs.Wrapf(ErrRecipientRejected, "%s", strings.Join(rejected, "; "))
	}

	w, err := c.Data()
	if err != nil {
		return errs.Wrap(err, "smtp DATA")
	}
	if _, err := w.Write(buildMessage(m)); err != nil {
		w.Close()
		return errs.Wrap(err, "smtp write body")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "smtp end DATA")
	}
	return c.Quit()
}

// deadline is ctx's deadline, capped at the sender timeout.
func (s *SMTPSender) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(s.timeout)
	if cd, ok := ctx.Deadline(); ok && cd.Before(d) {
		return cd
	}
	return d
}

func buildMessage(m Mail) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "From", m.From)
	writeHeader(&buf, "To", strings.Join(m.To, ", "))
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", m.Subject))
	writeHeader(&buf, "Date", time.Now().Format(time.RFC1123Z))
	writeHeader(&buf, "MIME-Version", "1.0")

	switch {
	case m.HTML != "" && m.Text != "":
		boundary := newBoundary()
		writeHeader(&buf, "Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
		buf.WriteString("\r\n")
		writePart(&buf, boundary, "text/plain; charset=utf-8", m.Text)
		writePart(&buf, boundary, "text/html; charset=utf-8", m.HTML)
		buf.WriteString("--" + boundary + "--\r\n")
	case m.HTML != "":
		writeBody(&buf, "text/html; charset=utf-8", m.HTML)
	default:
		writeBody(&buf, "text/plain; charset=utf-8", m.Text)
	}
	return buf.Bytes()
}

func writeHeader(buf *bytes.Buffer, k, v string) {
	buf.WriteString(k + ": " + v + "\r\n")
}

func writeBody(buf *bytes.Buffer, contentType, body string) {
	writeHeader(buf, "Content-Type", contentType)
	writeHeader(buf, "Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")
	qp := quotedprintable.NewWriter(buf)
	_, _ = qp.Write([]byte(body))
	_ = qp.Close()
	buf.WriteString("\r\n")
}

func writePart(buf *bytes.Buffer, boundary, contentType, body string) {
	buf.WriteString("--" + boundary + "\r\n")
	writeBody(buf, contentType, body)
}

func newBoundary() string {
	var b [12]byte
	_, _ = rand.Read(b[:])
	return "dispatch-" + hex.EncodeToString(b[:])
}
