package utils

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. Satisfied by SMTPMailer in production
// and by test doubles in tests.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail over SMTP using gomail
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPMailer builds an SMTPMailer from string config values
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	p, err := strconv.Atoi(port)
	if err != nil || p == 0 {
		p = 587
	}
	return &SMTPMailer{
		Host:     host,
		Port:     p,
		Username: username,
		Password: password,
		From:     from,
	}
}

// Send delivers a single HTML mail
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// PaymentConfirmationBody renders the booking payment confirmation mail
func PaymentConfirmationBody(firstName string, bookingID uint, amount float64) string {
	return fmt.Sprintf(`
		<h2>Payment received</h2>
		<p>Hi %s,</p>
		<p>Your payment of %.2f %s for booking #%d has been confirmed.</p>
		<p>Thank you for booking with TripStay!</p>
	`, firstName, amount, PaymentCurrency, bookingID)
}
