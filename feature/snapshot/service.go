package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"zoo-manager/core/records"
	"zoo-manager/core/sequence"
	"zoo-manager/core/storage"
	"zoo-manager/feature/animals"
	"zoo-manager/feature/employees"
	"zoo-manager/feature/events"
	"zoo-manager/feature/souvenirs"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Prefix is the bucket folder holding every snapshot.
const Prefix = "snapshots/"

// ErrStorageDisabled is returned when no bucket is configured.
var ErrStorageDisabled = errors.New("object storage is disabled")

// Object is one uploaded collection dump.
type Object struct {
	Collection string `json:"collection"`
	Key        string `json:"key"`
	Records    int    `json:"records"`
	Size       int64  `json:"size"`
}

// Manifest describes a completed snapshot.
type Manifest struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Objects   []Object  `json:"objects"`
}

// collection loads every row of one table.
type collection struct {
	name string
	load func(ctx context.Context) (any, int, error)
}

func dump[T records.Record](repo *records.Repository[T]) func(ctx context.Context) (any, int, error) {
	return func(ctx context.Context) (any, int, error) {
		rows, err := repo.FindAll(ctx)
		return rows, len(rows), err
	}
}

// Service writes JSON snapshots of the record store to object storage.
type Service struct {
	client      storage.Client
	bucket      string
	logger      *zap.Logger
	collections []collection
	now         func() time.Time
}

// NewService creates a snapshot service. client may be nil when storage is disabled.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	alloc := sequence.NewAllocator(db)
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		collections: []collection{
			{name: "animals", load: dump(animals.NewRepository(db))},
			{name: "employees", load: dump(records.NewRepository[employees.Employee](db, "employee"))},
			{name: "events", load: dump(records.NewRepository[events.Event](db, "event"))},
			{name: "souvenirs", load: dump(records.NewRepository[souvenirs.Souvenir](db, "souvenir"))},
			{name: "counters", load: func(ctx context.Context) (any, int, error) {
				rows, err := alloc.All(ctx)
				return rows, len(rows), err
			}},
		},
		now: time.Now,
	}
}

// Enabled reports whether a bucket is configured.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Create dumps every collection concurrently and uploads one JSON object per
// collection plus a manifest under snapshots/<id>/.
func (s *Service) Create(ctx context.Context) (*Manifest, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	manifest := &Manifest{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Objects:   make([]Object, len(s.collections)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i, col := range s.collections {
		eg.Go(func() error {
			rows, count, err := col.load(egCtx)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", col.name, err)
			}
			key := path.Join(Prefix, manifest.ID, col.name+".json")
			size, err := s.upload(egCtx, key, rows)
			if err != nil {
				return err
			}
			manifest.Objects[i] = Object{Collection: col.name, Key: key, Records: count, Size: size}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		s.logger.Error("Snapshot failed", zap.String("id", manifest.ID), zap.Error(err))
		return nil, err
	}

	if _, err := s.upload(ctx, path.Join(Prefix, manifest.ID, "manifest.json"), manifest); err != nil {
		return nil, err
	}

	s.logger.Info("Snapshot created", zap.String("id", manifest.ID), zap.Int("objects", len(manifest.Objects)))
	return manifest, nil
}

func (s *Service) upload(ctx context.Context, key string, v any) (int64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return int64(len(data)), nil
}

// List returns the identifiers of the stored snapshots, sorted.
func (s *Service) List(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	ids := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		id := strings.Trim(strings.TrimPrefix(obj.Key, Prefix), "/")
		if id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
