// Package blob stores complaint attachments in MinIO-compatible object
// storage. The backend is optional; the lifecycle service treats a nil
// uploader or a failed upload as "no attachment".
package blob

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Config carries the object storage connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioUploader uploads attachment bytes and hands back a direct URL.
type MinioUploader struct {
	client *minio.Client
	bucket string
	Log    *zap.SugaredLogger
}

// NewMinioUploader connects to the object store and ensures the
// attachment bucket exists.
func NewMinioUploader(cfg Config, log *zap.SugaredLogger) (*MinioUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio bucket create: %w", err)
		}
	}

	log.Infow("object storage connected", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	return &MinioUploader{client: client, bucket: cfg.Bucket, Log: log}, nil
}

// Upload stores the bytes under a unique key prefixed to the original
// filename and returns the object's URL.
func (u *MinioUploader) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	objectName := uuid.NewString() + "_" + filepath.Base(filename)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := u.client.PutObject(ctx, u.bucket, objectName, r, size, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("minio put: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", u.client.EndpointURL(), u.bucket, objectName), nil
}
