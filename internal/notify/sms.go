package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type smsSender interface {
	Send(to, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func (t *twilioSender) Send(to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)
	_, err := t.client.Api.CreateMessage(params)
	return err
}

// SMSChannel relays a panic alert to the first emergency contact via Twilio
type SMSChannel struct {
	sender smsSender
}

// NewSMSChannel creates an SMS channel backed by Twilio credentials
func NewSMSChannel(sid, token, from string) *SMSChannel {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return &SMSChannel{sender: &twilioSender{client: client, from: from}}
}

func (c *SMSChannel) Name() string { return "sms" }

// Notify sends an SMS with the alert coordinates to the first emergency
// contact only. Skips when the user has no contacts on file.
func (c *SMSChannel) Notify(ctx context.Context, ev Event) (Status, error) {
	if len(ev.Contacts) == 0 {
		return StatusSkipped, nil
	}

	body := fmt.Sprintf("PANIC ALERT: a tourist you are listed for needs help at lat %.6f, lng %.6f", ev.Lat, ev.Lng)

	// The Twilio REST client does not take a context, so the send runs in a
	// goroutine and the deadline is enforced here.
	done := make(chan error, 1)
	to := ev.Contacts[0]
	go func() {
		done <- c.sender.Send(to, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			return StatusFailed, fmt.Errorf("twilio send to %s: %w", to, err)
		}
		return StatusSent, nil
	case <-ctx.Done():
		return StatusFailed, fmt.Errorf("twilio send to %s: %w", to, ctx.Err())
	}
}
