// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface covering the
// operations the zoo manager needs: bucket checks, uploads, downloads and
// listings. It works against AWS S3 and self-hosted MinIO alike.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider so storage
// interactions can be mocked in unit tests (see core/storage/mocks).
//
// # Consumers
//
//   - feature/landing reads public/index.html from the bucket.
//   - feature/snapshot writes JSON exports of every collection.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
