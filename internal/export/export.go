// Package export publishes project archives to object storage.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrDisabled = errors.New("export is not configured")

// Publisher uploads an archive and returns where it can be fetched.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) (string, error)
}

// ObjectKey builds "{prefix}/{owner}/{publicID}/{fileName}", skipping an
// empty prefix.
func ObjectKey(prefix, owner, publicID, fileName string) string {
	return strings.TrimPrefix(path.Join(strings.Trim(prefix, "/"), owner, publicID, fileName), "/")
}

// S3API is the subset of the S3 client used for uploads.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Publisher struct {
	client S3API
	bucket string
}

func NewS3Publisher(client S3API, bucket string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket}
}

// NewS3PublisherFromEnv loads the default AWS credential chain for region.
func NewS3PublisherFromEnv(ctx context.Context, bucket, region string) (*S3Publisher, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Publisher(s3.NewFromConfig(cfg), bucket), nil
}

func (p *S3Publisher) Publish(ctx context.Context, key string, body []byte) (string, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/zip"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", p.bucket, key, err)
	}
	return "s3://" + p.bucket + "/" + key, nil
}

// NoopPublisher is used when no bucket is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, []byte) (string, error) {
	return "", ErrDisabled
}
