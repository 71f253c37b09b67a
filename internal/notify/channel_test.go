package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSMSSender struct {
	calls []string
	err   error
	delay time.Duration
}

func (f *fakeSMSSender) Send(to, body string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.calls = append(f.calls, to)
	return f.err
}

type fakePushSender struct {
	tokens []string
	err    error
}

func (f *fakePushSender) Send(ctx context.Context, token, title, body string) error {
	f.tokens = append(f.tokens, token)
	return f.err
}

func TestDisabledChannel(t *testing.T) {
	ch := Disabled("sms")

	assert.Equal(t, "sms", ch.Name())

	status, err := ch.Notify(context.Background(), Event{Contacts: []string{"+911234567890"}})
	assert.NoError(t, err)
	assert.Equal(t, StatusSkipped, status)
}

func TestSMSChannel_Notify_FirstContactOnly(t *testing.T) {
	sender := &fakeSMSSender{}
	ch := &SMSChannel{sender: sender}

	ev := Event{Lat: 12.9716, Lng: 77.5946, Contacts: []string{"+911111111111", "+922222222222"}}
	status, err := ch.Notify(context.Background(), ev)

	assert.NoError(t, err)
	assert.Equal(t, StatusSent, status)
	assert.Equal(t, []string{"+911111111111"}, sender.calls) // first contact only
}

func TestSMSChannel_Notify_SkipsWithoutContacts(t *testing.T) {
	sender := &fakeSMSSender{}
	ch := &SMSChannel{sender: sender}

	status, err := ch.Notify(context.Background(), Event{})

	assert.NoError(t, err)
	assert.Equal(t, StatusSkipped, status)
	assert.Empty(t, sender.calls) // zero outbound provider calls attempted
}

func TestSMSChannel_Notify_ProviderFailure(t *testing.T) {
	sender := &fakeSMSSender{err: errors.New("twilio 500")}
	ch := &SMSChannel{sender: sender}

	status, err := ch.Notify(context.Background(), Event{Contacts: []string{"+911111111111"}})

	assert.Error(t, err)
	assert.Equal(t, StatusFailed, status)
}

func TestSMSChannel_Notify_DeadlineEnforced(t *testing.T) {
	sender := &fakeSMSSender{delay: 200 * time.Millisecond}
	ch := &SMSChannel{sender: sender}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	status, err := ch.Notify(ctx, Event{Contacts: []string{"+911111111111"}})

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusFailed, status)
}

func TestPushChannel_Notify(t *testing.T) {
	sender := &fakePushSender{}
	ch := &PushChannel{sender: sender}

	status, err := ch.Notify(context.Background(), Event{DeviceToken: "fcm-token"})

	assert.NoError(t, err)
	assert.Equal(t, StatusSent, status)
	assert.Equal(t, []string{"fcm-token"}, sender.tokens)
}

func TestPushChannel_Notify_SkipsWithoutDeviceToken(t *testing.T) {
	sender := &fakePushSender{}
	ch := &PushChannel{sender: sender}

	status, err := ch.Notify(context.Background(), Event{})

	assert.NoError(t, err)
	assert.Equal(t, StatusSkipped, status)
	assert.Empty(t, sender.tokens)
}

func TestPushChannel_Notify_ProviderFailure(t *testing.T) {
	sender := &fakePushSender{err: errors.New("fcm unavailable")}
	ch := &PushChannel{sender: sender}

	status, err := ch.Notify(context.Background(), Event{DeviceToken: "fcm-token"})

	assert.Error(t, err)
	assert.Equal(t, StatusFailed, status)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "sent", StatusSent.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
