package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fullstack-starter/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrUnsafeKey is returned for object keys resolving outside the build directory.
	ErrUnsafeKey = errors.New("unsafe object key")
)

// Syncer transfers a bundle between a bucket prefix and a local directory.
type Syncer struct {
	client storage.Client
	bucket string
	prefix string
	dir    string
	logger *zap.Logger
}

// NewSyncer creates a Syncer for bucket/prefix and the local dir.
func NewSyncer(client storage.Client, bucket, prefix, dir string, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		dir:    dir,
		logger: logger,
	}
}

// Sync downloads the bundle into the local directory and returns the number
// of files written.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	if err := s.checkBucket(ctx); err != nil {
		return 0, err
	}

	// Stops the listing goroutine when Sync returns before draining it.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{Prefix: s.keyPrefix(), Recursive: true}
	count := 0
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return count, fmt.Errorf("failed to list bundle objects: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		dest, err := s.localPath(obj.Key)
		if err != nil {
			return count, err
		}
		if err := s.download(ctx, obj.Key, dest); err != nil {
			return count, err
		}
		s.logger.Debug("Downloaded bundle file", zap.String("key", obj.Key), zap.String("path", dest))
		count++
	}

	s.logger.Info("Bundle synced", zap.String("bucket", s.bucket), zap.Int("files", count))
	return count, nil
}

// Publish uploads every regular file of the local directory and returns the
// number of objects written.
func (s *Syncer) Publish(ctx context.Context) (int, error) {
	if err := s.checkBucket(ctx); err != nil {
		return 0, err
	}

	count := 0
	err := filepath.WalkDir(s.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		key := s.keyPrefix() + filepath.ToSlash(rel)
		if err := s.upload(ctx, p, key); err != nil {
			return err
		}
		s.logger.Debug("Uploaded bundle file", zap.String("key", key))
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to publish bundle: %w", err)
	}

	s.logger.Info("Bundle published", zap.String("bucket", s.bucket), zap.Int("files", count))
	return count, nil
}

func (s *Syncer) checkBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", s.bucket, ErrBucketNotFound)
	}
	return nil
}

func (s *Syncer) keyPrefix() string {
	if s.prefix == "" {
		return ""
	}
	return s.prefix + "/"
}

// localPath maps an object key to a path below the local directory.
func (s *Syncer) localPath(key string) (string, error) {
	rel := strings.TrimPrefix(key, s.keyPrefix())
	clean := path.Clean("/" + rel)
	if rel == "" || clean != "/"+rel {
		return "", fmt.Errorf("%q: %w", key, ErrUnsafeKey)
	}
	return filepath.Join(s.dir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (s *Syncer) download(ctx context.Context, key, dest string) error {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, obj); err != nil {
		f.Close()
		return fmt.Errorf("failed to download %s: %w", key, err)
	}
	return f.Close()
}

func (s *Syncer) upload(ctx context.Context, p, key string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(p))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, f, info.Size(), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
