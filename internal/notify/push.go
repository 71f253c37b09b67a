package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const (
	pushTitle = "Panic Alert Received"
	pushBody  = "Your panic alert has been received. Help is on the way!"
)

type pushSender interface {
	Send(ctx context.Context, token, title, body string) error
}

type fcmSender struct {
	client *messaging.Client
}

func (f *fcmSender) Send(ctx context.Context, token, title, body string) error {
	_, err := f.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	return err
}

// PushChannel sends a fixed acknowledgment push to the alerting user's device
type PushChannel struct {
	sender pushSender
}

// NewPushChannel creates a push channel from FCM service-account credentials JSON
func NewPushChannel(ctx context.Context, credentialsJSON string) (*PushChannel, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(credentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fcm messaging client: %w", err)
	}
	return &PushChannel{sender: &fcmSender{client: client}}, nil
}

func (c *PushChannel) Name() string { return "push" }

// Notify sends the fixed push notification. Skips when the user never
// registered a device token.
func (c *PushChannel) Notify(ctx context.Context, ev Event) (Status, error) {
	if ev.DeviceToken == "" {
		return StatusSkipped, nil
	}
	if err := c.sender.Send(ctx, ev.DeviceToken, pushTitle, pushBody); err != nil {
		return StatusFailed, fmt.Errorf("fcm send: %w", err)
	}
	return StatusSent, nil
}
