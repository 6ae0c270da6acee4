package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"dailyreview/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Archiver 把写入成功的记录另存一份
type Archiver interface {
	Archive(ctx context.Context, f *models.Formdata) error
}

type NoopArchiver struct{}

func (NoopArchiver) Archive(context.Context, *models.Formdata) error { return nil }

type s3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver 以 JSON 形式写入 S3
type S3Archiver struct {
	client s3Putter
	bucket string
}

func NewS3Archiver(client s3Putter, bucket string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket}
}

// ArchiveKey 按创建日期分目录: formdata/YYYY/MM/DD/<id>.json
func ArchiveKey(f *models.Formdata) string {
	return fmt.Sprintf("formdata/%s/%s.json", f.CreatedAt.UTC().Format("2006/01/02"), f.ID)
}

func (a *S3Archiver) Archive(ctx context.Context, f *models.Formdata) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(ArchiveKey(f)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		ACL:         s3types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("s3: %w", err)
	}
	return nil
}
