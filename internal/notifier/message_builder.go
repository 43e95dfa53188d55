package notifier

import (
	"strings"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/config"
	"github.com/wneessen/go-mail"
)

// MessageBuilder assembles the change notice.
type MessageBuilder struct {
	fromName string
	from     string
	to       string
	subject  string
	urls     []string
}

// NewMessageBuilder creates a builder with the fixed sender name and subject.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		fromName: EmailFromName,
		subject:  EmailSubject,
	}
}

// WithFrom sets the sender address.
func (b *MessageBuilder) WithFrom(address string) *MessageBuilder {
	b.from = address
	return b
}

// WithTo sets the recipient address.
func (b *MessageBuilder) WithTo(address string) *MessageBuilder {
	b.to = address
	return b
}

// WithURLs sets the URLs listed in the body, in order.
func (b *MessageBuilder) WithURLs(urls []string) *MessageBuilder {
	b.urls = urls
	return b
}

// Body renders the HTML body.
func (b *MessageBuilder) Body() string {
	return EmailBodyPrefix + strings.Join(b.urls, EmailURLSep)
}

// Build returns the message. Unparsable addresses are configuration errors.
func (b *MessageBuilder) Build() (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(b.fromName, b.from); err != nil {
		return nil, &common.ConfigurationError{
			Section: "email",
			Field:   config.EnvEmailUsername,
			Reason:  "invalid sender address",
			Wrapped: err,
		}
	}
	if err := msg.To(b.to); err != nil {
		return nil, &common.ConfigurationError{
			Section: "email",
			Field:   config.EnvEmailTo,
			Reason:  "invalid recipient address",
			Wrapped: err,
		}
	}

	msg.Subject(b.subject)
	msg.SetBodyString(mail.TypeTextHTML, b.Body())
	return msg, nil
}
