package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/config"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/logger"
	"go.uber.org/zap"
)

// nowUnixMilli is injectable for deterministic file names in tests.
var nowUnixMilli = func() int64 { return time.Now().UnixMilli() }

// BucketStore writes uploaded images to per-bucket directories under a
// single root and serves them by public URL. Each bucket carries its
// own size limit, enforced before anything touches disk.
type BucketStore struct {
	root          string
	publicBaseURL string
	buckets       map[string]config.BucketConfig
}

// NewBucketStore creates a bucket store from storage configuration.
func NewBucketStore(cfg config.StorageConfig) *BucketStore {
	return &BucketStore{
		root:          cfg.Root,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		buckets: map[string]config.BucketConfig{
			cfg.Speakers.Name:   cfg.Speakers,
			cfg.Volunteers.Name: cfg.Volunteers,
			cfg.Sponsors.Name:   cfg.Sponsors,
		},
	}
}

// Upload validates and stores an image, returning its public URL.
// The stored name is entityID-<upload millis>.<ext> so repeated uploads
// for the same entity never collide.
func (s *BucketStore) Upload(bucket, entityID, originalName, contentType string, data []byte) (string, error) {
	cfg, ok := s.buckets[bucket]
	if !ok {
		return "", fmt.Errorf("%w: %s", domainerrors.ErrUnknownBucket, bucket)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: got %s", domainerrors.ErrNotAnImage, contentType)
	}

	limitBytes := cfg.SizeLimitKB * 1024
	if len(data) > limitBytes {
		return "", fmt.Errorf("%w: file size must be less than %dKB", domainerrors.ErrFileTooLarge, cfg.SizeLimitKB)
	}

	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	if ext == "" {
		ext = cfg.DefaultExt
	}
	fileName := fmt.Sprintf("%s-%d.%s", entityID, nowUnixMilli(), ext)

	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return "", err
	}

	logger.Info(nil, "file uploaded",
		zap.String("bucket", bucket),
		zap.String("file", fileName),
		zap.Int("size_bytes", len(data)))

	return s.publicBaseURL + "/" + bucket + "/" + fileName, nil
}

// Delete removes a stored file given its public URL. A URL that does
// not point at a known bucket, or a file already gone, is not an error.
func (s *BucketStore) Delete(bucket, publicURL string) error {
	if _, ok := s.buckets[bucket]; !ok {
		return fmt.Errorf("%w: %s", domainerrors.ErrUnknownBucket, bucket)
	}

	name := path.Base(publicURL)
	if name == "." || name == "/" || name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, bucket, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SizeLimitKB reports the configured limit for a bucket, for callers
// that want to surface it before accepting an upload.
func (s *BucketStore) SizeLimitKB(bucket string) (int, error) {
	cfg, ok := s.buckets[bucket]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domainerrors.ErrUnknownBucket, bucket)
	}
	return cfg.SizeLimitKB, nil
}
