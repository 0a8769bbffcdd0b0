package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// InvitationEmailData feeds the invitation mail body.
type InvitationEmailData struct {
	StoreName      string
	InvitedBy      string
	Role           string
	InvitationLink string
}

// SendInvitationEmail sends the invitation mail asynchronously. Delivery is
// best effort: when SMTP is not configured the mail is skipped and only the
// invitation link in the API response matters.
func SendInvitationEmail(to string, data InvitationEmailData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		if host == "" {
			log.Printf("SMTP not configured, skipping invitation email to %s", to)
			return
		}

		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		body := fmt.Sprintf(
			"<p>%s invited you to join <b>%s</b> as %s.</p><p><a href=%q>Accept invitation</a> (valid for 7 days)</p>",
			data.InvitedBy, data.StoreName, data.Role, data.InvitationLink,
		)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "You have been invited to "+data.StoreName)
		m.SetBody("text/html", body)

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Failed to send invitation email: %v", err)
		}
	}()
}

// OrderCancelledEmailData feeds the store-cancellation notice.
type OrderCancelledEmailData struct {
	StoreName  string
	PublicCode string
	Reason     string
	Refund     string
}

// SendOrderCancelledEmail notifies the customer that the store cancelled
// their order. Best effort, same SMTP settings as the invitation mail.
func SendOrderCancelledEmail(to string, data OrderCancelledEmailData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		if host == "" {
			log.Printf("SMTP not configured, skipping cancellation email to %s", to)
			return
		}

		port := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		body := fmt.Sprintf("Your order %s was cancelled by %s.\nReason: %s\n", data.PublicCode, data.StoreName, data.Reason)
		if data.Refund != "" {
			body += fmt.Sprintf("Refund status: %s\n", data.Refund)
		}

		e := email.NewEmail()
		e.From = from
		e.To = []string{to}
		e.Subject = fmt.Sprintf("Order %s cancelled", data.PublicCode)
		e.Text = []byte(body)

		addr := fmt.Sprintf("%s:%s", host, port)
		if err := e.Send(addr, smtp.PlainAuth("", username, password, host)); err != nil {
			log.Printf("Failed to send cancellation email: %v", err)
		}
	}()
}
