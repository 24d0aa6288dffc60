package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESClient sends email through AWS SES v2.
type SESClient struct {
	client *sesv2.Client
}

// NewSESClient creates an SES v2 client with static credentials.
func NewSESClient(ctx context.Context, region, accessKey, secretKey string) (*SESClient, error) {
	creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &SESClient{client: sesv2.NewFromConfig(awsCfg)}, nil
}

// Send delivers a single email with simple HTML content.
func (c *SESClient) Send(ctx context.Context, msg Message) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML)},
				},
			},
		},
	}

	if _, err := c.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: sending email: %w", err)
	}

	return nil
}
