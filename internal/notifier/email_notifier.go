package notifier

import (
	"context"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/config"
	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// Sender delivers built messages. *mail.Client satisfies it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SenderFactory opens a Sender for host:port with the given credentials.
type SenderFactory func(host string, port int, cfg config.EmailConfig) (Sender, error)

// NewSMTPSender connects with implicit TLS and SMTP AUTH PLAIN.
func NewSMTPSender(host string, port int, cfg config.EmailConfig) (Sender, error) {
	return mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
}

// EmailNotifier mails the list of changed URLs to one recipient.
type EmailNotifier struct {
	cfg       config.EmailConfig
	newSender SenderFactory
	logger    zerolog.Logger
}

// NewEmailNotifier creates an EmailNotifier. A nil factory selects
// NewSMTPSender. Settings are not checked until Notify.
func NewEmailNotifier(cfg config.EmailConfig, newSender SenderFactory, logger zerolog.Logger) *EmailNotifier {
	if newSender == nil {
		newSender = NewSMTPSender
	}
	return &EmailNotifier{
		cfg:       cfg,
		newSender: newSender,
		logger:    logger.With().Str("component", "EmailNotifier").Logger(),
	}
}

// BuildMessage composes the notice for urls.
func (n *EmailNotifier) BuildMessage(urls []string) (*mail.Msg, error) {
	return NewMessageBuilder().
		WithFrom(n.cfg.Username).
		WithTo(n.cfg.To).
		WithURLs(urls).
		Build()
}

// Notify sends one email listing urls. Missing or malformed settings give a
// *common.ConfigurationError; a failed delivery gives a
// *common.NotificationError.
func (n *EmailNotifier) Notify(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		n.logger.Debug().Msg("No URLs to notify, skipping email")
		return nil
	}

	if err := n.cfg.Validate(); err != nil {
		return err
	}

	host, port, err := ParseServerAddress(n.cfg.Server)
	if err != nil {
		return err
	}

	msg, err := n.BuildMessage(urls)
	if err != nil {
		return err
	}

	sender, err := n.newSender(host, port, n.cfg)
	if err != nil {
		return &common.ConfigurationError{
			Section: "email",
			Field:   config.EnvEmailServer,
			Reason:  "cannot create SMTP client",
			Wrapped: err,
		}
	}

	n.logger.Info().Str("host", host).Int("port", port).Str("to", n.cfg.To).Int("url_count", len(urls)).Msg("Sending email")
	if err := sender.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.Error().Err(err).Str("host", host).Int("port", port).Msg("Error sending email")
		return common.NewNotificationError(emailChannel, err)
	}

	n.logger.Info().Str("to", n.cfg.To).Msg("Email sent")
	return nil
}
