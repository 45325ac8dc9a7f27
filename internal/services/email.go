package services

import (
	"crypto/tls"
	"fmt"

	"github.com/bookswap/bookswap-backend/internal/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	config *config.Config
}

func NewEmailService(config *config.Config) *EmailService {
	return &EmailService{config: config}
}

// Enabled reports whether SMTP credentials are configured.
func (s *EmailService) Enabled() bool {
	return s != nil && s.config.SMTPUsername != ""
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return d.DialAndSend(m)
}

// SendOrderPlacedEmail notifies a seller that someone ordered their book.
func (s *EmailService) SendOrderPlacedEmail(sellerEmail, sellerName, buyerUsername, bookTitle string) error {
	subject := "New order for your book"
	body := fmt.Sprintf(`
		<h2>You received a new order</h2>
		<p>Hi %s,</p>
		<p><strong>%s</strong> placed an order for your book <strong>%s</strong>.</p>
		<p>Visit your received orders page (<a href="%s/dashboard/received">%s/dashboard/received</a>) to confirm or discard it.</p>
		<p>Happy swapping,<br>The BookSwap Team</p>
	`, sellerName, buyerUsername, bookTitle, s.config.BaseURL, s.config.BaseURL)

	return s.SendEmail(sellerEmail, subject, body)
}
