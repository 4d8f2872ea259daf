package mail

import "context"

// ExpiryReminder is the payload for one expiry notification email.
type ExpiryReminder struct {
	To            string
	UserName      string
	CertName      string
	Provider      string
	DaysRemaining int
}

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	// SendExpiryReminder delivers one reminder email for an expiring
	// certification.
	SendExpiryReminder(ctx context.Context, r ExpiryReminder) error
}
