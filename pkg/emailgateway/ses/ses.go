// Package ses sends customer notifications through Amazon SES (API v2).
package ses

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/emailgateway"
	"customers/pkg/logger"
	"customers/pkg/result"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

const charset = "UTF-8"

// API is the part of the SES client used by Gateway.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Options configures the SES gateway.
type Options struct {
	// Region defaults to us-east-1.
	Region string
	// AccessKeyID and SecretAccessKey select static credentials. When either is
	// empty the default AWS credential chain is used.
	AccessKeyID     string
	SecretAccessKey string
	// From is the sender address.
	From string
}

// Gateway implements emailgateway.Gateway on top of SES.
type Gateway struct {
	client API
	from   string
}

var _ emailgateway.Gateway = (*Gateway)(nil)

// New loads the AWS configuration and builds an SES backed gateway.
func New(ctx context.Context, options Options) (*Gateway, error) {
	region := options.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if options.AccessKeyID != "" && options.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKeyID, options.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return NewWithClient(sesv2.NewFromConfig(cfg), options.From), nil
}

// NewWithClient builds a gateway over an existing client.
func NewWithClient(client API, from string) *Gateway {
	return &Gateway{client: client, from: from}
}

func (g *Gateway) SendPromotionNotification(ctx context.Context,
	email domain.Email,
	status domain.CustomerStatus) result.Result {
	msg := emailgateway.PromotionMessage(g.from, email, status)

	out, err := g.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String(charset)},
				},
			},
		},
	})
	if err != nil {
		logger.Warn(ctx, "could not send promotion email through ses", logger.Email("to", msg.To), zap.Error(err))

		return result.Fail(fmt.Sprintf("could not send promotion email: %v", err))
	}

	logger.Info(ctx, "promotion email sent through ses",
		logger.Email("to", msg.To),
		zap.String("messageId", aws.ToString(out.MessageId)))

	return result.Ok()
}
