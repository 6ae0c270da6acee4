package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewAWSClients 初始化 S3 和 SQS 客户端，未配置时对应返回 nil
func NewAWSClients(ctx context.Context, config Config) (*s3.Client, *sqs.Client, error) {
	if config.AWSS3Bucket == "" && config.AWSSQSQueue == "" {
		return nil, nil, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("加载 AWS 配置失败: %w", err)
	}

	var baseEndpoint *string
	if config.AWSEndpoint != "" {
		baseEndpoint = aws.String(config.AWSEndpoint)
	}

	var s3Client *s3.Client
	if config.AWSS3Bucket != "" {
		s3Client = s3.New(s3.Options{
			Region:       cfg.Region,
			Credentials:  cfg.Credentials,
			HTTPClient:   cfg.HTTPClient,
			BaseEndpoint: baseEndpoint,
			UsePathStyle: true,
		})
	}

	var sqsClient *sqs.Client
	if config.AWSSQSQueue != "" {
		sqsClient = sqs.New(sqs.Options{
			Region:       cfg.Region,
			Credentials:  cfg.Credentials,
			HTTPClient:   cfg.HTTPClient,
			BaseEndpoint: baseEndpoint,
		})
	}

	return s3Client, sqsClient, nil
}

// GetQueueURL 根据队列名查询 SQS 队列地址
func GetQueueURL(ctx context.Context, client *sqs.Client, name string) (string, error) {
	resp, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(name)})
	if err != nil {
		return "", fmt.Errorf("获取 SQS 队列地址失败: %w", err)
	}
	return aws.ToString(resp.QueueUrl), nil
}
