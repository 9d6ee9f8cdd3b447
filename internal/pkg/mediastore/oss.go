package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"github.com/adarsh/schoolsite/internal/config"
	"github.com/adarsh/schoolsite/internal/pkg/apperrors"
	"github.com/adarsh/schoolsite/internal/pkg/logger"
)

// objectPutter is the slice of the OSS bucket API the uploader needs.
// *oss.Bucket satisfies it.
type objectPutter interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
}

// OSSUploader stores images in an OSS bucket and exposes them via the
// configured public base URL. Object bytes stay in memory until the remote
// call completes; nothing is written to local disk.
type OSSUploader struct {
	bucket  objectPutter
	baseURL string
}

// NewOSSUploader creates an uploader backed by the bucket named in the config.
func NewOSSUploader(cfg *config.Config) (*OSSUploader, error) {
	client, err := oss.New(cfg.Media.Endpoint, cfg.Media.AccessKeyID, cfg.Media.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(cfg.Media.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open OSS bucket %s: %w", cfg.Media.Bucket, err)
	}

	logger.Info().Str("bucket", cfg.Media.Bucket).Str("endpoint", cfg.Media.Endpoint).Msg("Media storage configured")

	return &OSSUploader{
		bucket:  bucket,
		baseURL: strings.TrimRight(cfg.MediaBaseURL(), "/"),
	}, nil
}

// Upload sends the image bytes to the bucket under a generated object key
// and returns the public URL. The original filename only contributes its
// extension; the key itself is a fresh UUID so concurrent uploads cannot
// collide.
func (u *OSSUploader) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	key := objectKey(filename, folder)

	if err := u.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(sniffContentType(data))); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Media upload failed")
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	if u.baseURL == "" {
		// Upload landed but we cannot hand out a usable URL
		return "", fmt.Errorf("%w: no public base URL configured", apperrors.ErrUploadFailed)
	}

	url := u.baseURL + "/" + key
	logger.Info().Str("key", key).Str("url", url).Msg("Media uploaded")
	return url, nil
}

func objectKey(filename, folder string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	if folder == "" {
		return name
	}
	return strings.Trim(folder, "/") + "/" + name
}

func sniffContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}
