// Package mail defines the outbound email collaborator used by the
// password-recovery flow and its two implementations: a real SMTP sender and
// a log-backed sender for development environments without a relay.
package mail

import "context"

// Sender delivers a message to a single recipient. Implementations must be
// safe for concurrent use.
//
// Delivery failures must not corrupt caller state: a reset code stays valid
// even when the message carrying it is lost, so the user can simply request
// a new one.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}
