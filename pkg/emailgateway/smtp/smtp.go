// Package smtp sends customer notifications through an SMTP relay.
package smtp

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/emailgateway"
	"customers/pkg/logger"
	"customers/pkg/result"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Options configures the SMTP gateway.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the sender address.
	From string
}

// Gateway implements emailgateway.Gateway over SMTP.
type Gateway struct {
	sender Sender
	from   string
}

var _ emailgateway.Gateway = (*Gateway)(nil)

// New builds a gateway dialing the configured relay for every message.
func New(options Options) *Gateway {
	return NewWithSender(
		gomail.NewDialer(options.Host, options.Port, options.Username, options.Password),
		options.From,
	)
}

// NewWithSender builds a gateway over an existing sender.
func NewWithSender(sender Sender, from string) *Gateway {
	return &Gateway{sender: sender, from: from}
}

func (g *Gateway) SendPromotionNotification(ctx context.Context,
	email domain.Email,
	status domain.CustomerStatus) result.Result {
	// gomail cannot be cancelled once dialing starts
	if err := ctx.Err(); err != nil {
		return result.Fail(fmt.Sprintf("could not send promotion email: %v", err))
	}

	msg := emailgateway.PromotionMessage(g.from, email, status)

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := g.sender.DialAndSend(m); err != nil {
		logger.Warn(ctx, "could not send promotion email through smtp", logger.Email("to", msg.To), zap.Error(err))

		return result.Fail(fmt.Sprintf("could not send promotion email: %v", err))
	}

	logger.Info(ctx, "promotion email sent through smtp", logger.Email("to", msg.To))

	return result.Ok()
}
