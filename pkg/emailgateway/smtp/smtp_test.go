package smtp_test

import (
	"bytes"
	"context"
	"customers/pkg/domain"
	"customers/pkg/emailgateway/smtp"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)

	return f.err
}

func TestGateway_SendPromotionNotification(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		g := smtp.NewWithSender(sender, "")

		res := g.SendPromotionNotification(context.Background(), domain.MustEmail("jane@example.com"), domain.CustomerStatusPreferred)
		require.True(t, res.IsSuccess())
		require.Len(t, sender.sent, 1)

		m := sender.sent[0]
		require.Equal(t, []string{"noreply@northwind.com"}, m.GetHeader("From"))
		require.Equal(t, []string{"jane@example.com"}, m.GetHeader("To"))
		require.Equal(t, []string{"Congratulations!"}, m.GetHeader("Subject"))

		var buf bytes.Buffer
		_, err := m.WriteTo(&buf)
		require.NoError(t, err)
		require.Contains(t, buf.String(), "You've been promoted to Preferred")
	})

	t.Run("relay failure", func(t *testing.T) {
		t.Parallel()

		g := smtp.NewWithSender(&fakeSender{err: errors.New("connection refused")}, "crm@example.com")

		res := g.SendPromotionNotification(context.Background(), domain.MustEmail("jane@example.com"), domain.CustomerStatusGold)
		require.True(t, res.IsFailure())
		require.Contains(t, res.Error(), "connection refused")
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		g := smtp.NewWithSender(sender, "")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res := g.SendPromotionNotification(ctx, domain.MustEmail("jane@example.com"), domain.CustomerStatusGold)
		require.True(t, res.IsFailure())
		require.Empty(t, sender.sent)
	})
}
