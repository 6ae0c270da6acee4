package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dailyreview/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
)

// Publisher 把写入成功的事件通知给下游
type Publisher interface {
	Publish(ctx context.Context, event models.FormdataEvent) error
	Close() error
}

// NoopPublisher 未配置任何下游时使用
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, models.FormdataEvent) error { return nil }
func (NoopPublisher) Close() error                                        { return nil }

// MultiPublisher 依次发往所有下游，单个失败不影响其他
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, event models.FormdataEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiPublisher) Close() error {
	var errs []error
	for _, p := range m {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher 写入 Kafka topic，key 为记录 ID
type KafkaPublisher struct {
	writer kafkaWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},   // balances messages between partitions
			BatchTimeout: 10 * time.Millisecond, // 每次只写一条，不等待凑批
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.FormdataEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Formdata.ID),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// RedisPublisher 发布到 Redis 频道，持有并负责关闭客户端
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event models.FormdataEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

type sqsSender interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher 发送到 SQS 队列
type SQSPublisher struct {
	client   sqsSender
	queueURL string
}

func NewSQSPublisher(client sqsSender, queueURL string) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL}
}

func (p *SQSPublisher) Publish(ctx context.Context, event models.FormdataEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(payload)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"type": {DataType: aws.String("String"), StringValue: aws.String(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("sqs: %w", err)
	}
	return nil
}

func (p *SQSPublisher) Close() error { return nil }
