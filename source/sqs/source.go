package sqs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"github.com/AirHelp/samplestats/helper"
)

const (
	defaultMaxMessages = 100
	batchSize          = 10
)

//go:generate mockgen -destination=mock/sqs_client_mock.go -package sqsMock github.com/AirHelp/samplestats/source/sqs SqsClient
type SqsClient interface {
	GetQueueUrl(context.Context, *sqs.GetQueueUrlInput, ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(context.Context, *sqs.ReceiveMessageInput, ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(context.Context, *sqs.DeleteMessageInput, ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type Config struct {
	Queues      []string `yaml:"queues"`
	MaxMessages int      `yaml:"max_messages"`
	Delete      bool     `yaml:"delete"`
}

type Source struct {
	queueURLs   []string
	maxMessages int
	delete      bool
	client      SqsClient
}

var ErrNoQueueSpecified = errors.New("no queues provided")

func New(ctx context.Context, config *Config) (*Source, error) {
	if len(config.Queues) == 0 {
		return &Source{}, ErrNoQueueSpecified
	}

	cfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return &Source{}, err
	}

	return newWithClient(ctx, config, sqs.NewFromConfig(cfg))
}

func newWithClient(ctx context.Context, config *Config, client SqsClient) (*Source, error) {
	if len(config.Queues) == 0 {
		return &Source{}, ErrNoQueueSpecified
	}

	maxMessages := config.MaxMessages

	if maxMessages <= 0 {
		maxMessages = defaultMaxMessages
	}

	var queueURLs []string

	for _, queue := range config.Queues {
		res, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queue)})

		if err != nil {
			return &Source{}, err
		}

		queueURLs = append(queueURLs, aws.ToString(res.QueueUrl))
	}

	return &Source{
		queueURLs:   queueURLs,
		maxMessages: maxMessages,
		delete:      config.Delete,
		client:      client,
	}, nil
}

func (s *Source) Kind() string {
	return "sqs"
}

// Load drains up to maxMessages messages across all queues. Each message body
// holds a single value.
func (s *Source) Load(ctx context.Context) ([]uint64, error) {
	var values []uint64

	for _, queueURL := range s.queueURLs {
		for len(values) < s.maxMessages {
			output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            &queueURL,
				MaxNumberOfMessages: int32(helper.Min(batchSize, s.maxMessages-len(values))),
			})

			if err != nil {
				return nil, err
			}

			if len(output.Messages) == 0 {
				break
			}

			for _, msg := range output.Messages {
				n, err := helper.ParseUint(aws.ToString(msg.Body))
				if err != nil {
					return nil, fmt.Errorf("message %v: %w", aws.ToString(msg.MessageId), err)
				}

				values = append(values, n)

				if !s.delete {
					continue
				}

				if _, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
					QueueUrl:      &queueURL,
					ReceiptHandle: msg.ReceiptHandle,
				}); err != nil {
					return nil, err
				}
			}
		}

		zap.S().Debugf("received %d values so far, last queue %v", len(values), queueURL)
	}

	return values, nil
}
