package file

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appcfg "github.com/roar-media/core/internal/config"
)

// Storage persists uploaded binaries. The composer treats uploads as
// opaque: only the stored name and a public URL come back.
type Storage interface {
	Save(ctx context.Context, category, name string, data []byte, contentType string) (stored string, url string, err error)
}

// NewStorage picks the backend from config: S3 when enabled, the local
// uploads directory otherwise.
func NewStorage(cfg *appcfg.AppConfig) (Storage, error) {
	if cfg.S3.Enable {
		return newS3Storage(cfg.S3)
	}
	return &localStorage{dir: cfg.Paths.Uploads, publicPrefix: "/uploads"}, nil
}

// localStorage writes uploads under a per-category directory.
type localStorage struct {
	dir          string
	publicPrefix string
}

func (l *localStorage) Save(_ context.Context, category, name string, data []byte, _ string) (string, string, error) {
	stored := storedName(name)
	dir := filepath.Join(l.dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, stored), data, 0o644); err != nil {
		return "", "", fmt.Errorf("write upload: %w", err)
	}
	return stored, l.publicPrefix + "/" + category + "/" + stored, nil
}

// s3Storage puts uploads into an S3 bucket.
type s3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func newS3Storage(opts appcfg.S3Config) (*s3Storage, error) {
	if opts.Bucket == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/access_key_id/secret_access_key are required")
	}
	region := opts.Region
	if region == "" {
		region = "auto"
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	base := strings.TrimRight(opts.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, region)
	}
	return &s3Storage{client: client, bucket: opts.Bucket, baseURL: base}, nil
}

func (s *s3Storage) Save(ctx context.Context, category, name string, data []byte, contentType string) (string, string, error) {
	stored := storedName(name)
	key := category + "/" + stored
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return stored, s.baseURL + "/" + key, nil
}

// storedName keeps the original extension but replaces the basename so
// uploads never collide or escape the directory.
func storedName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return uuid.New().String() + ext
}
