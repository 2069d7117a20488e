package hive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// UploadOptions tunes an Upload call. The zero value is valid.
type UploadOptions struct {
	// Key is the destination object key. Defaults to the source file's
	// basename.
	Key string
	// ContentType is passed through to the service.
	ContentType string
	// Metadata is attached to the object as user metadata.
	Metadata map[string]string
	// Size is a size hint in bytes. When zero the source file is stat'ed.
	Size int64
	// Progress receives per-chunk byte increments during the transfer.
	Progress ProgressFunc
}

// DownloadOptions tunes a Download call. The zero value is valid.
type DownloadOptions struct {
	// Dir is the destination directory, created if absent. Defaults to the
	// current directory.
	Dir string
	// Progress receives per-chunk byte increments during the transfer.
	Progress ProgressFunc
}

// Upload streams a local file to bucket/key. A missing or unreadable source
// file fails immediately with a local error, before any network call.
func (h *Hive) Upload(ctx context.Context, bucket, filePath string, opts UploadOptions) error {
	key := opts.Key
	if key == "" {
		key = filepath.Base(filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("hive: upload %s: %w", filePath, err)
	}
	defer f.Close()

	size := opts.Size
	if size <= 0 {
		st, err := f.Stat()
		if err != nil {
			return fmt.Errorf("hive: upload %s: %w", filePath, err)
		}
		size = st.Size()
	}

	var reader io.Reader = f
	if opts.Progress != nil {
		reader = newProgressReader(f, size, opts.Progress)
	}

	putOpts := minio.PutObjectOptions{
		ContentType:  opts.ContentType,
		UserMetadata: opts.Metadata,
	}
	if _, err := h.client.PutObject(ctx, bucket, key, reader, size, putOpts); err != nil {
		return remoteErr("upload", bucket, key, err)
	}

	h.logger.Debug("uploaded object",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int64("size", size),
	)
	return nil
}

// Download streams bucket/key into opts.Dir, creating the directory if
// needed. The object lands as Dir/basename(key), written via a temporary
// partial file so an interrupted transfer never leaves a truncated result
// under the final name. Returns the path of the written file.
func (h *Hive) Download(ctx context.Context, bucket, key string, opts DownloadOptions) (string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	stat, err := h.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return "", remoteErr("download", bucket, key, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("hive: download %s/%s: %w", bucket, key, err)
	}

	base := filepath.Base(key)
	local := filepath.Join(dir, base)
	partial := filepath.Join(dir, fmt.Sprintf(".%s.%s.partial", base, uuid.NewString()))

	body, err := h.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", remoteErr("download", bucket, key, err)
	}
	defer body.Close()

	out, err := os.Create(partial)
	if err != nil {
		return "", fmt.Errorf("hive: download %s/%s: %w", bucket, key, err)
	}

	var w io.Writer = out
	if opts.Progress != nil {
		w = newProgressWriter(out, stat.Size, opts.Progress)
	}

	if _, err := io.Copy(w, body); err != nil {
		out.Close()
		os.Remove(partial)
		return "", remoteErr("download", bucket, key, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(partial)
		return "", fmt.Errorf("hive: download %s/%s: %w", bucket, key, err)
	}
	if err := os.Rename(partial, local); err != nil {
		os.Remove(partial)
		return "", fmt.Errorf("hive: download %s/%s: %w", bucket, key, err)
	}

	h.logger.Debug("downloaded object",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.String("local", local),
		zap.Int64("size", stat.Size),
	)
	return local, nil
}
