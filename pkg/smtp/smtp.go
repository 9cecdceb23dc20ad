// Package smtp is the outbound mail client. Email delivery is a future
// extension point: the server constructs the client only when smtp is
// enabled in config, and callers treat a nil client as "no mail".
package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/collegevents/backend/pkg/logger"
)

type Client struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

func NewClient(dialer *gomail.Dialer, from, domain string) *Client {
	return &Client{dialer: dialer, from: from, domain: domain}
}

// SendEventAnnouncement mails a new-event notice to a user.
func (c *Client) SendEventAnnouncement(to string, eventTitle string, link string) {
	c.send(to,
		"New Event Added!",
		fmt.Sprintf("A new event %q has been added! Check it out on CollegeVents: %s", eventTitle, link),
	)
}

// SendDecisionMail mails the outcome of a society request to its president.
func (c *Client) SendDecisionMail(to string, societyName string, approved bool) {
	subject := "Your Society Request Has Been Rejected"
	body := fmt.Sprintf("Your society request for %q has been rejected. You can reapply later with an improved proposal.", societyName)
	if approved {
		subject = "Your Society Request Has Been Approved"
		body = fmt.Sprintf("Your society request for %q has been approved. You now have access to the Society Dashboard.", societyName)
	}
	c.send(to, subject, body)
}

func (c *Client) send(to, subject, body string) {
	msg := gomail.NewMessage()

	msg.SetHeader("Message-ID", generateMessageID(c.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := c.dialer.DialAndSend(msg); err != nil {
		logger.Log.Error(err)
		return
	}

	logger.Log.Infof("Email successfully sent to %s", to)
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}
