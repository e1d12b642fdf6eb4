// utils/mailer.go
package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Mailer delivers one-time codes to account mailboxes. SendOTP returns a
// delivery identifier on success.
type Mailer interface {
	SendOTP(toEmail, toName, code string) (string, error)
}

// SMTPMailer sends OTP emails through a plain SMTP transport.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailerFromEnv builds a mailer from SMTP_HOST, SMTP_PORT, SMTP_USER,
// SMTP_PASS and FROM_EMAIL.
func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("FROM_EMAIL")

	if host == "" || portStr == "" || user == "" || pass == "" || from == "" {
		return nil, fmt.Errorf("missing SMTP configuration")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %v", err)
	}

	return &SMTPMailer{
		host:     host,
		port:     port,
		username: user,
		password: pass,
		from:     from,
	}, nil
}

// SendOTP delivers the verification code as an HTML email and returns the
// generated Message-ID.
func (m *SMTPMailer) SendOTP(toEmail, toName, code string) (string, error) {
	subject := "Your Yugantha verification code"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Verify your email</h2>
			<p>Hello %s,</p>
			<p>Use the following code to continue setting up or resetting your password:</p>
			<h3 style="background-color: #f0f0f0; padding: 10px; font-size: 24px; letter-spacing: 5px; text-align: center;">%s</h3>
			<p>This code will expire in 10 minutes.</p>
			<p>If you did not request this code, you can safely ignore this email.</p>
			<p>Thank you,<br>The Yugantha Team</p>
		</body>
		</html>
	`, toName, code)

	deliveryID := fmt.Sprintf("<%s@yugantha>", uuid.New().String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", deliveryID)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("failed to send email: %v", err)
	}

	return deliveryID, nil
}
