package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/learngate/learngate/internal/config"
	"github.com/learngate/learngate/internal/logger"
)

// smtpSender delivers messages through a plain SMTP relay.
type smtpSender struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *logger.Logger
}

// NewSMTPSender constructs a [Sender] for the relay configured in cfg.
// PLAIN authentication is used when a username is configured.
func NewSMTPSender(cfg config.Mail, logger *logger.Logger) Sender {
	var auth smtp.Auth
	if cfg.Username != "" {
		host := cfg.SMTPAddress
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, host)
	}

	logger.Debug().Str("relay", cfg.SMTPAddress).Msg("creating smtp sender")
	return &smtpSender{
		addr:   cfg.SMTPAddress,
		from:   cfg.From,
		auth:   auth,
		logger: logger,
	}
}

// Send builds a multipart/alternative message and hands it to the relay.
// The ctx deadline is honored only up to the blocking smtp.SendMail call;
// the server's request timeout bounds the overall wait.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(s.from, to, subject, htmlBody, textBody)
	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("error sending mail via %s: %w", s.addr, err)
	}

	return nil
}

const mimeBoundary = "learngate-alt-boundary"

func buildMessage(from, to, subject, htmlBody, textBody string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", mimeBoundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)

	return []byte(b.String())
}
