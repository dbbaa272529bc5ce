// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the generated site can be published to AWS
// S3 or a self-hosted MinIO bucket.
//
// # Client Interface
//
// The Client interface exposes only the operations the publisher needs, which
// keeps it easy to mock in unit tests (see core/storage/mocks).
//
//   - BucketExists / MakeBucket: ensure the target bucket is present.
//   - PutObject: upload a file with its content type.
//   - ListObjects / RemoveObject: prune objects no longer present locally.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
