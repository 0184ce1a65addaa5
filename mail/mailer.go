package mail

import (
	"fmt"
	"log"

	"github.com/talentbuzz/marketplace-go/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional account emails. Sends are best-effort:
// callers fire them from a goroutine and no delivery confirmation is
// awaited.
type Mailer interface {
	SendActivationEmail(to, token string) error
	SendPasswordResetEmail(to, username, token string) error
}

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword)
	return d.DialAndSend(msg)
}

func (m *SMTPMailer) SendActivationEmail(to, token string) error {
	link := fmt.Sprintf("%s/activate/%s", config.PlatformDomain, token)
	body := fmt.Sprintf(`<p>Welcome!</p>
<p>Click the following link to activate your account:</p>
<p><a href="%s">%s</a></p>`, link, link)
	return m.send(to, "Activate your account", body)
}

func (m *SMTPMailer) SendPasswordResetEmail(to, username, token string) error {
	link := fmt.Sprintf("%s/set-password/%s", config.PlatformDomain, token)
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>You requested a password reset. Click the link below to set a new password:</p>
<p><a href="%s">%s</a></p>
<p>If you did not request this, please ignore this email.</p>`, username, link, link)
	return m.send(to, "Password Reset Requested", body)
}

// SendAsync runs fn in a goroutine and logs the failure, matching the
// fire-and-forget contract of account emails.
func SendAsync(fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Printf("mail send failed: %v", err)
		}
	}()
}
