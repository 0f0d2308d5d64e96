package services

import (
	"context"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const avatarURLExpiry = 15 * time.Minute

// MediaService resolves customer avatar references. Values stored as
// object keys become presigned URLs; values that are already absolute
// URLs pass through untouched.
type MediaService interface {
	AvatarURL(ctx context.Context, objectName string) (string, error)
	EnsureBucketExists(ctx context.Context) error
}

type mediaService struct {
	client *minio.Client
	bucket string
}

func NewMediaService(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (MediaService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &mediaService{client: client, bucket: bucket}, nil
}

func (m *mediaService) AvatarURL(ctx context.Context, objectName string) (string, error) {
	if strings.HasPrefix(objectName, "http://") || strings.HasPrefix(objectName, "https://") || strings.HasPrefix(objectName, "/") {
		return objectName, nil
	}
	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, avatarURLExpiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (m *mediaService) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}
