package persistent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/andreyxaxa/Image-Transformer/pkg/s3client"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

const S3Scheme = "s3://"

// ObjectRepo addresses images as s3://bucket/key.
type ObjectRepo struct {
	*s3client.S3Client
}

func NewObjectRepo(s3c *s3client.S3Client) *ObjectRepo {
	return &ObjectRepo{s3c}
}

func (r *ObjectRepo) Read(ctx context.Context, path string) ([]byte, error) {
	bucket, key, err := SplitS3Path(path)
	if err != nil {
		return nil, fmt.Errorf("ObjectRepo - Read - SplitS3Path: %w", err)
	}

	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("ObjectRepo - Read - r.Client.GetObject: %w: %w", errs.ErrIO, err)
	}
	defer result.Body.Close()

	b, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("ObjectRepo - Read - io.ReadAll: %w: %w", errs.ErrIO, err)
	}

	return b, nil
}

func (r *ObjectRepo) Write(ctx context.Context, path string, data []byte) error {
	bucket, key, err := SplitS3Path(path)
	if err != nil {
		return fmt.Errorf("ObjectRepo - Write - SplitS3Path: %w", err)
	}

	_, err = r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(mimetype.Detect(data).String()),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("ObjectRepo - Write - r.Client.PutObject: %w: %w", errs.ErrIO, err)
	}

	return nil
}

func SplitS3Path(path string) (string, string, error) {
	rest, ok := strings.CutPrefix(path, S3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%w: not an s3 path: %q", errs.ErrIO, path)
	}

	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: malformed s3 path: %q", errs.ErrIO, path)
	}

	return bucket, key, nil
}
