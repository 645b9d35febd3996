package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoStorage handles photo uploads to S3
type PhotoStorage struct {
	client *s3.Client
	bucket string
}

func NewPhotoStorage(client *s3.Client, bucket string) *PhotoStorage {
	return &PhotoStorage{
		client: client,
		bucket: bucket,
	}
}

// Upload writes the photo under the given key and returns the key on
// success. Keys are generated per call; no overwrite semantics are relied on.
func (s *PhotoStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo %s: %w", key, err)
	}

	return key, nil
}

// Delete removes a photo. The submit path never calls this; it exists for
// manual cleanup of photos whose record insert failed.
func (s *PhotoStorage) Delete(ctx context.Context, key string) error {

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", key, err)
	}

	return nil
}

// PublicURL returns the displayable URL for a stored photo key.
func (s *PhotoStorage) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
