package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"certtracker/internal/config"
)

// sesMailer implements Mailer on top of Amazon SES.
type sesMailer struct {
	client *sesv2.Client
	sender string
	appURL string
}

// NewSES builds an SES-backed Mailer. Static credentials from config are
// used when present; otherwise the default AWS credential chain applies.
func NewSES(ctx context.Context, cfg config.SESConfig) (Mailer, error) {
	if cfg.Sender == "" {
		return nil, fmt.Errorf("ses sender address is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &sesMailer{
		client: sesv2.NewFromConfig(awsCfg),
		sender: cfg.Sender,
		appURL: cfg.AppURL,
	}, nil
}

// SendExpiryReminder delivers one reminder email with text and HTML bodies.
func (m *sesMailer) SendExpiryReminder(ctx context.Context, r ExpiryReminder) error {
	subject := fmt.Sprintf("%s expires in %d days", r.CertName, r.DaysRemaining)
	text := m.textBody(r)
	html := m.htmlBody(r)

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{r.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(text)},
					Html: &types.Content{Data: aws.String(html)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", r.To, err)
	}
	return nil
}

func (m *sesMailer) textBody(r ExpiryReminder) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your %s certification from %s will expire in %d days.\n\n"+
			"Next steps:\n"+
			"- Check renewal requirements\n"+
			"- Schedule your renewal exam\n"+
			"- Update your certification in CertTracker\n\n"+
			"View your certifications: %s\n\n"+
			"This is an automated reminder from CertTracker.\n",
		r.UserName, r.CertName, r.Provider, r.DaysRemaining, m.appURL,
	)
}

func (m *sesMailer) htmlBody(r ExpiryReminder) string {
	return fmt.Sprintf(
		`<html><body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`+
			`<h2>Hi %s,</h2>`+
			`<p><strong>%s</strong> from <strong>%s</strong> will expire in <strong>%d days</strong>.</p>`+
			`<ul>`+
			`<li>Check renewal requirements</li>`+
			`<li>Schedule your renewal exam</li>`+
			`<li>Update your certification in CertTracker</li>`+
			`</ul>`+
			`<p><a href="%s">View in CertTracker</a></p>`+
			`<p style="color: #6b7280; font-size: 14px;">This is an automated reminder from your CertTracker account.</p>`+
			`</body></html>`,
		r.UserName, r.CertName, r.Provider, r.DaysRemaining, m.appURL,
	)
}
