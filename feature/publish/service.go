package publish

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"testsrv/core/contenttype"
	"testsrv/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Options controls a publish run.
type Options struct {
	DryRun bool
	Prune  bool
}

// Report summarizes a publish run.
type Report struct {
	Uploaded []string          `json:"uploaded"`
	Removed  []string          `json:"removed"`
	Failed   map[string]string `json:"failed"`
	Bytes    int64             `json:"bytes"`
}

// Service publishes a directory to a bucket.
type Service struct {
	client storage.Client
	bucket string
	region string
	types  *contenttype.Resolver
	logger *zap.Logger
}

// NewService creates a new publish service.
func NewService(client storage.Client, bucket, region string, types *contenttype.Resolver, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		types:  types,
		logger: logger,
	}
}

// Publish uploads every regular file under root.
// Symlinks and other special files are skipped.
func (s *Service) Publish(ctx context.Context, root string, opts Options) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read site root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site root %s is not a directory", root)
	}

	exists, err := s.ensureBucket(ctx, opts.DryRun)
	if err != nil {
		return nil, err
	}

	report := &Report{Failed: make(map[string]string)}
	local := make(map[string]struct{})

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		local[key] = struct{}{}

		size, err := s.upload(ctx, p, key, opts.DryRun)
		if err != nil {
			s.logger.Warn("Failed to upload file", zap.String("key", key), zap.Error(err))
			report.Failed[key] = err.Error()
			return nil
		}

		report.Uploaded = append(report.Uploaded, key)
		report.Bytes += size
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	if opts.Prune && exists {
		if err := s.prune(ctx, local, report, opts.DryRun); err != nil {
			return report, err
		}
	}

	s.logger.Info("Publish completed",
		zap.String("bucket", s.bucket),
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("removed", len(report.Removed)),
		zap.Int("failed", len(report.Failed)),
		zap.Int64("bytes", report.Bytes))

	return report, nil
}

// ensureBucket reports whether the bucket existed before the run, creating it unless dryRun.
func (s *Service) ensureBucket(ctx context.Context, dryRun bool) (bool, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return true, nil
	}

	if dryRun {
		s.logger.Info("Bucket would be created", zap.String("bucket", s.bucket))
		return false, nil
	}

	s.logger.Info("Creating bucket", zap.String("bucket", s.bucket), zap.String("region", s.region))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return false, nil
}

func (s *Service) upload(ctx context.Context, path, key string, dryRun bool) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	contentType := s.types.Resolve(key)
	if dryRun {
		s.logger.Debug("Would upload", zap.String("key", key), zap.String("content_type", contentType))
		return info.Size(), nil
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (s *Service) prune(ctx context.Context, local map[string]struct{}, report *Report, dryRun bool) error {
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if _, ok := local[obj.Key]; ok {
			continue
		}

		if !dryRun {
			if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
				s.logger.Warn("Failed to remove object", zap.String("key", obj.Key), zap.Error(err))
				report.Failed[obj.Key] = err.Error()
				continue
			}
		}
		report.Removed = append(report.Removed, obj.Key)
	}
	return nil
}
