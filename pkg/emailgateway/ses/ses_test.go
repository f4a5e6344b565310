package ses_test

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/emailgateway/ses"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context,
	params *sesv2.SendEmailInput,
	_ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}

	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestGateway_SendPromotionNotification(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client := &fakeSES{}
		g := ses.NewWithClient(client, "")

		res := g.SendPromotionNotification(context.Background(), domain.MustEmail("jane@example.com"), domain.CustomerStatusGold)
		require.True(t, res.IsSuccess())

		require.Equal(t, "noreply@northwind.com", aws.ToString(client.input.FromEmailAddress))
		require.Equal(t, []string{"jane@example.com"}, client.input.Destination.ToAddresses)
		require.Equal(t, "Congratulations!", aws.ToString(client.input.Content.Simple.Subject.Data))
		require.Equal(t, "You've been promoted to Gold", aws.ToString(client.input.Content.Simple.Body.Text.Data))
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		client := &fakeSES{err: errors.New("throttled")}
		g := ses.NewWithClient(client, "crm@example.com")

		res := g.SendPromotionNotification(context.Background(), domain.MustEmail("jane@example.com"), domain.CustomerStatusPreferred)
		require.True(t, res.IsFailure())
		require.Contains(t, res.Error(), "throttled")
		require.Equal(t, "crm@example.com", aws.ToString(client.input.FromEmailAddress))
	})
}
