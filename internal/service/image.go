package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/cookify/backend/config"
)

var (
	// ErrNotAnImage is returned for uploads whose content isn't an image
	ErrNotAnImage = errors.New("file is not an image")
	// ErrImageTooLarge is returned for uploads over the configured limit
	ErrImageTooLarge = errors.New("image is too large")
)

// ImageEncoder turns an uploaded image into a string usable directly as a
// recipe's image field
type ImageEncoder interface {
	Encode(ctx context.Context, data []byte) (string, error)
}

// checkImage sniffs the MIME type; a zero maxSize means no limit
func checkImage(data []byte, maxSize int64) (string, error) {
	if maxSize > 0 && int64(len(data)) > maxSize {
		return "", ErrImageTooLarge
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	return contentType, nil
}

// DataURLEncoder embeds the image bytes in a data: URL, so the stored
// record is self-contained
type DataURLEncoder struct {
	MaxSize int64
}

// Encode returns data:<mime>;base64,<payload>
func (e DataURLEncoder) Encode(_ context.Context, data []byte) (string, error) {
	contentType, err := checkImage(data, e.MaxSize)
	if err != nil {
		return "", err
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ObjectPutter is the part of the S3 client the image store uses
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageStore uploads images to a bucket and returns their public URL
type S3ImageStore struct {
	client  ObjectPutter
	bucket  string
	urlFor  func(key string) string
	maxSize int64
}

// NewS3ImageStore creates an image store for the configured bucket
func NewS3ImageStore(s3Config *config.S3Config, maxSize int64) *S3ImageStore {
	return &S3ImageStore{
		client:  s3Config.Client,
		bucket:  s3Config.BucketName,
		urlFor:  s3Config.ObjectURL,
		maxSize: maxSize,
	}
}

// Encode uploads data under a fresh key and returns the object URL
func (s *S3ImageStore) Encode(ctx context.Context, data []byte) (string, error) {
	contentType, err := checkImage(data, s.maxSize)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("recipe-images/%s%s", uuid.New().String(), extensionFor(contentType))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.urlFor(key)
	slog.Info("uploaded recipe image", "bucket", s.bucket, "key", key)
	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/bmp":
		return ".bmp"
	}
	return ""
}
