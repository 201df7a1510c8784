package landing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"zoo-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// IndexKey is the object key of the landing page in the bucket.
const IndexKey = "public/index.html"

// ErrNoIndex is returned when no landing page has been published.
var ErrNoIndex = errors.New("landing page not found")

// Service loads the landing page from the bucket or the public directory.
type Service struct {
	publicDir string
	client    storage.Client
	bucket    string
	logger    *zap.Logger
}

// NewService creates a landing page service. A nil client serves from publicDir.
func NewService(publicDir string, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		publicDir: publicDir,
		client:    client,
		bucket:    bucket,
		logger:    logger,
	}
}

// FromStorage reports whether the page is read from object storage.
func (s *Service) FromStorage() bool {
	return s.client != nil
}

// Index returns the landing page document.
func (s *Service) Index(ctx context.Context) ([]byte, error) {
	if s.client == nil {
		data, err := os.ReadFile(filepath.Join(s.publicDir, "index.html"))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoIndex
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read landing page: %w", err)
		}
		return data, nil
	}

	obj, err := s.client.GetObject(ctx, s.bucket, IndexKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.objectError(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.objectError(err)
	}
	return data, nil
}

func (s *Service) objectError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNoIndex
	}
	return fmt.Errorf("failed to download %s: %w", IndexKey, err)
}
