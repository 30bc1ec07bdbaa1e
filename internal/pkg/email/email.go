package email

import (
	"fmt"

	mail "github.com/go-mail/mail/v2"
	"github.com/rs/zerolog"
)

// Sender defines the interface for outbound mail
type Sender interface {
	SendVerificationEmail(toEmail, toName, token string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string // Base URL used to build verification links
}

// SMTPSender implements Sender over SMTP
type SMTPSender struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(config SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		config: config,
		logger: logger,
	}
}

// SendVerificationEmail sends the email verification link for a new account
func (s *SMTPSender) SendVerificationEmail(toEmail, toName, token string) error {
	verificationURL := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", s.config.BaseURL, token)

	// Without SMTP credentials (local development), log the link instead
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("verificationURL", verificationURL).
			Msg("SMTP credentials not configured - verification email not sent, use the URL above")
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2>Welcome to the Placement Portal</h2>
				<p>Hello %s,</p>
				<p>Please verify your email address to complete your registration:</p>
				<p style="text-align: center; margin: 30px 0;">
					<a href="%s">Verify Email</a>
				</p>
				<p>This link expires in 24 hours. If you did not register, ignore this email.</p>
			</div>
		</body>
		</html>
	`, toName, verificationURL)

	m := mail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Verify your email address")
	m.SetBody("text/html", body)

	d := mail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Msg("Verification email sent")
	return nil
}
