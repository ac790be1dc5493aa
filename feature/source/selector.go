package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"mtg-collector/core/storage"
)

// ErrNoSource is returned when the bucket holds no CSV candidate.
var ErrNoSource = errors.New("no csv source found")

// Local opens a CSV from the filesystem. A missing file is a run-level error.
func Local(path string) (string, io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open local csv: %w", err)
	}
	return path, f, nil
}

// Selector locates the newest inventory CSV in the storage bucket.
type Selector struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewSelector creates a selector over one bucket.
func NewSelector(client storage.Client, bucket string, logger *zap.Logger) *Selector {
	return &Selector{client: client, bucket: bucket, logger: logger}
}

// Newest returns the name and content of the newest .csv object under prefix,
// judged by modification time. Ties keep the earlier listing entry, which is
// undefined but deterministic for a given listing. No candidates is
// ErrNoSource.
func (s *Selector) Newest(ctx context.Context, prefix string) (string, io.ReadCloser, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if !exists {
		return "", nil, fmt.Errorf("bucket %q does not exist", s.bucket)
	}

	var best *minio.ObjectInfo
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return "", nil, fmt.Errorf("failed to list bucket %q: %w", s.bucket, obj.Err)
		}
		if !strings.HasSuffix(strings.ToLower(obj.Key), ".csv") {
			continue
		}
		if best == nil || obj.LastModified.After(best.LastModified) {
			o := obj
			best = &o
		}
	}

	if best == nil {
		return "", nil, ErrNoSource
	}

	s.logger.Info("Selected newest csv",
		zap.String("object", best.Key),
		zap.Time("modified", best.LastModified),
	)

	rc, err := s.client.GetObject(ctx, s.bucket, best.Key, minio.GetObjectOptions{})
	if err != nil {
		return "", nil, fmt.Errorf("failed to download %q: %w", best.Key, err)
	}
	return best.Key, rc, nil
}
