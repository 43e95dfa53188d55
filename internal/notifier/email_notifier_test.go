package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	messages []*mail.Msg
	err      error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.messages = append(f.messages, messages...)
	return f.err
}

type dialRecord struct {
	host  string
	port  int
	calls int
}

func fakeFactory(sender *fakeSender, rec *dialRecord) SenderFactory {
	return func(host string, port int, _ config.EmailConfig) (Sender, error) {
		rec.host = host
		rec.port = port
		rec.calls++
		return sender, nil
	}
}

func validEmailConfig() config.EmailConfig {
	return config.EmailConfig{
		Username: "watcher@example.com",
		Password: "secret",
		Server:   "smtp.example.com:2525",
		To:       "ops@example.com",
	}
}

func bodyOf(t *testing.T, msg *mail.Msg) string {
	t.Helper()

	parts := msg.GetParts()
	require.Len(t, parts, 1)
	content, err := parts[0].GetContent()
	require.NoError(t, err)
	return string(content)
}

func TestEmailNotifier_Notify(t *testing.T) {
	sender := &fakeSender{}
	rec := &dialRecord{}
	n := NewEmailNotifier(validEmailConfig(), fakeFactory(sender, rec), zerolog.Nop())

	err := n.Notify(context.Background(), []string{"http://a.test", "http://b.test"})

	require.NoError(t, err)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "smtp.example.com", rec.host)
	assert.Equal(t, 2525, rec.port)
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, []string{EmailSubject}, msg.GetGenHeader(mail.HeaderSubject))
	assert.Equal(t, "Website address: http://a.test<br>http://b.test", bodyOf(t, msg))

	from := msg.GetAddrHeaderString(mail.HeaderFrom)
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "web watcher")
	assert.Contains(t, from[0], "<watcher@example.com>")

	to := msg.GetAddrHeaderString(mail.HeaderTo)
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "ops@example.com")
}

func TestEmailNotifier_DefaultPort(t *testing.T) {
	cfg := validEmailConfig()
	cfg.Server = "smtp.example.com"
	rec := &dialRecord{}
	n := NewEmailNotifier(cfg, fakeFactory(&fakeSender{}, rec), zerolog.Nop())

	require.NoError(t, n.Notify(context.Background(), []string{"http://a.test"}))

	assert.Equal(t, "smtp.example.com", rec.host)
	assert.Equal(t, 465, rec.port)
}

func TestEmailNotifier_EmptyListSendsNothing(t *testing.T) {
	rec := &dialRecord{}
	n := NewEmailNotifier(config.EmailConfig{}, fakeFactory(&fakeSender{}, rec), zerolog.Nop())

	require.NoError(t, n.Notify(context.Background(), nil))
	assert.Zero(t, rec.calls)
}

func TestEmailNotifier_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.EmailConfig)
	}{
		{"missing username", func(c *config.EmailConfig) { c.Username = "" }},
		{"missing password", func(c *config.EmailConfig) { c.Password = "" }},
		{"missing server", func(c *config.EmailConfig) { c.Server = "" }},
		{"missing recipient", func(c *config.EmailConfig) { c.To = "" }},
		{"bad port", func(c *config.EmailConfig) { c.Server = "smtp.example.com:abc" }},
		{"bad sender", func(c *config.EmailConfig) { c.Username = "not an address" }},
		{"bad recipient", func(c *config.EmailConfig) { c.To = "<<>>" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validEmailConfig()
			tt.mutate(&cfg)
			rec := &dialRecord{}
			n := NewEmailNotifier(cfg, fakeFactory(&fakeSender{}, rec), zerolog.Nop())

			err := n.Notify(context.Background(), []string{"http://a.test"})

			require.Error(t, err)
			assert.Equal(t, common.KindConfiguration, common.KindOf(err))
			assert.Zero(t, rec.calls, "no connection before settings are valid")
		})
	}
}

func TestEmailNotifier_SenderFactoryFailure(t *testing.T) {
	factory := func(string, int, config.EmailConfig) (Sender, error) {
		return nil, errors.New("no client")
	}
	n := NewEmailNotifier(validEmailConfig(), factory, zerolog.Nop())

	err := n.Notify(context.Background(), []string{"http://a.test"})

	assert.Equal(t, common.KindConfiguration, common.KindOf(err))
}

func TestEmailNotifier_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("535 authentication failed")}
	n := NewEmailNotifier(validEmailConfig(), fakeFactory(sender, &dialRecord{}), zerolog.Nop())

	err := n.Notify(context.Background(), []string{"http://a.test"})

	require.Error(t, err)
	var notifyErr *common.NotificationError
	require.ErrorAs(t, err, &notifyErr)
	assert.Equal(t, "email", notifyErr.Channel)
	assert.Equal(t, common.KindNotification, common.KindOf(err))
	assert.False(t, common.IsFatal(err))
}

func TestEmailNotifier_SMTPUnreachable(t *testing.T) {
	cfg := validEmailConfig()
	cfg.Server = "127.0.0.1:1"
	n := NewEmailNotifier(cfg, nil, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := n.Notify(ctx, []string{"http://a.test"})

	require.Error(t, err)
	assert.Equal(t, common.KindNotification, common.KindOf(err))
}

func TestMessageBuilder_Body(t *testing.T) {
	body := NewMessageBuilder().WithURLs([]string{"http://only.test"}).Body()
	assert.Equal(t, "Website address: http://only.test", body)
}
