// Package storage reads and writes gallery media in a Cloudflare R2 (S3-compatible) bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// ObjectAPI is the subset of *s3.Client used here.
type ObjectAPI interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Object struct {
	Key          string
	URL          string
	Size         int64
	LastModified time.Time
}

type R2Client struct {
	client  ObjectAPI
	bucket  string
	baseURL string
}

func NewR2Client(ctx context.Context, c R2Config) (*R2Client, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.Endpoint)
		o.UsePathStyle = true
	})
	return NewR2ClientWith(client, c.Bucket, c.PublicBaseURL), nil
}

// NewR2ClientWith wraps an existing client; tests pass a fake.
func NewR2ClientWith(client ObjectAPI, bucket, baseURL string) *R2Client {
	return &R2Client{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// PublicURL is where a key is served from.
func (r *R2Client) PublicURL(key string) string {
	if r.baseURL == "" {
		return fmt.Sprintf("https://%s/%s", r.bucket, key)
	}
	return fmt.Sprintf("%s/%s", r.baseURL, key)
}

// List returns every object under prefix, following continuation tokens.
func (r *R2Client) List(ctx context.Context, prefix string) ([]Object, error) {
	p := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(prefix),
	})

	out := []Object{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s/%s: %w", r.bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			out = append(out, Object{
				Key:          key,
				URL:          r.PublicURL(key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return out, nil
}

func (r *R2Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := r.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return r.PublicURL(key), nil
}

// UploadMultipartFile uploads a form file under key and returns its public URL.
func (r *R2Client) UploadMultipartFile(ctx context.Context, key string, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return r.Upload(ctx, key, file.Header.Get("Content-Type"), f)
}
