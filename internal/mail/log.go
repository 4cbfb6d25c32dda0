package mail

import (
	"context"

	"github.com/learngate/learngate/internal/logger"
)

// logSender writes outbound messages to the structured log instead of
// delivering them. Used when no SMTP relay is configured (development and
// test environments).
type logSender struct {
	logger *logger.Logger
}

// NewLogSender constructs a [Sender] that logs messages instead of sending
// them.
func NewLogSender(logger *logger.Logger) Sender {
	logger.Debug().Msg("creating log sender: outbound mail will not be delivered")
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	log := logger.FromContext(ctx)

	log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("text", textBody).
		Msg("outbound mail (log sender)")

	return nil
}
