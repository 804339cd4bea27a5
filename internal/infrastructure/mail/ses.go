package mail

import (
	"context"
	"errors"
	"fmt"

	"career-guide/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var ErrNotConfigured = errors.New("mail is not configured")

type sendEmailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SES struct {
	client    sendEmailAPI
	sender    string
	verifyURL string
}

func NewSES(ctx context.Context, cfg config.MailConfig) (*SES, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SES{client: ses.NewFromConfig(awsCfg), sender: cfg.Sender, verifyURL: cfg.VerifyURL}, nil
}

// SendVerification mails the account verification link to the given address.
func (s *SES) SendVerification(ctx context.Context, to, username, token string) error {
	if s == nil || s.client == nil {
		return ErrNotConfigured
	}
	link := s.verifyURL + "?token=" + token
	subject := "Verify your email"
	text := fmt.Sprintf("Hi %s,\n\nConfirm your email address by opening the link below:\n%s\n\nThe link expires in 24 hours.", username, link)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Confirm your email address by clicking <a href="%s">this link</a>.</p><p>The link expires in 24 hours.</p>`, username, link)

	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(text)},
				Html: &types.Content{Data: aws.String(html)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
