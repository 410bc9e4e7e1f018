package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"blogapi/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name S3Client . S3Client
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewS3Client builds a client for any S3 compatible endpoint using static credentials.
func NewS3Client(cfg config.S3) *s3.Client {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

// S3Store keeps uploads in a bucket. References are public URLs of the objects.
type S3Store struct {
	client        S3Client
	bucket        string
	publicBaseURL string
	prefix        string
}

func NewS3Store(client S3Client, bucket, publicBaseURL, prefix string) *S3Store {
	return &S3Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		prefix:        prefix,
	}
}

func (s *S3Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}

	// request signing needs a seekable body
	body, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read upload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	key := s.prefix + objectName(filename)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if ext := Extension(filename); ext != "" {
		if contentType := mime.TypeByExtension("." + ext); contentType != "" {
			input.ContentType = aws.String(contentType)
		}
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *S3Store) Remove(ctx context.Context, reference string) error {
	key, ok := strings.CutPrefix(reference, s.publicBaseURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("reference %q is not in bucket %s", reference, s.bucket)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
