package cli

import (
	"context"

	"dailyreview/config"
	"dailyreview/services"
)

// newSinks 按配置组装下游通知和归档，全部未配置时返回空实现
func newSinks(ctx context.Context, conf config.Config) (services.Publisher, services.Archiver, error) {
	var publishers services.MultiPublisher

	if brokers := conf.GetKafkaBrokers(); len(brokers) > 0 {
		publishers = append(publishers, services.NewKafkaPublisher(brokers, conf.KafkaTopic))
		config.Logger.Infow("Kafka 通知已启用", "brokers", brokers, "topic", conf.KafkaTopic)
	}

	redisClient, err := config.NewRedisClient(ctx, conf)
	if err != nil {
		publishers.Close()
		return nil, nil, err
	}
	if redisClient != nil {
		publishers = append(publishers, services.NewRedisPublisher(redisClient, conf.RedisChannel))
		config.Logger.Infow("Redis 通知已启用", "channel", conf.RedisChannel)
	}

	s3Client, sqsClient, err := config.NewAWSClients(ctx, conf)
	if err != nil {
		publishers.Close()
		return nil, nil, err
	}
	if sqsClient != nil {
		queueURL, err := config.GetQueueURL(ctx, sqsClient, conf.AWSSQSQueue)
		if err != nil {
			publishers.Close()
			return nil, nil, err
		}
		publishers = append(publishers, services.NewSQSPublisher(sqsClient, queueURL))
		config.Logger.Infow("SQS 通知已启用", "queueURL", queueURL)
	}

	var archiver services.Archiver = services.NoopArchiver{}
	if s3Client != nil {
		archiver = services.NewS3Archiver(s3Client, conf.AWSS3Bucket)
		config.Logger.Infow("S3 归档已启用", "bucket", conf.AWSS3Bucket)
	}

	var publisher services.Publisher = services.NoopPublisher{}
	if len(publishers) > 0 {
		publisher = publishers
	}
	return publisher, archiver, nil
}
