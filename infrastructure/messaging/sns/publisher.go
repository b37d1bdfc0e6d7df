// Package sns implements the notification publisher port on an SNS topic.
package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
)

// TopicPublisher publishes messages to a single SNS topic
type TopicPublisher struct {
	client   *sns.Client
	topicARN string
	logger   *zap.Logger
}

// NewTopicPublisher creates a publisher for the named topic. The ARN is
// assembled from the configured region and account at construction time.
func NewTopicPublisher(client *sns.Client, region, accountID, topicName string, logger *zap.Logger) ports.NotificationPublisher {
	return &TopicPublisher{
		client:   client,
		topicARN: fmt.Sprintf("arn:aws:sns:%s:%s:%s", region, accountID, topicName),
		logger:   logger,
	}
}

// Publish sends a single message to the topic.
func (p *TopicPublisher) Publish(ctx context.Context, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(message),
	}

	result, err := p.client.Publish(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topicARN, err)
	}

	p.logger.Debug("Notification published",
		zap.String("topicArn", p.topicARN),
		zap.String("messageId", aws.ToString(result.MessageId)),
	)

	return nil
}
