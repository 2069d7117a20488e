package hive

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DefaultPresignExpiry is used when PresignedURL is called with a
// non-positive expiry.
const DefaultPresignExpiry = time.Hour

// ObjectInfo describes an object from a listing.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	LastModified time.Time
}

// DeleteResult reports the outcome of a Delete. DeleteMarker is true only
// when the bucket is versioned and the service created a delete marker
// instead of removing the object outright.
type DeleteResult struct {
	DeleteMarker          bool
	VersionID             string
	DeleteMarkerVersionID string
}

// ListObjects lists all objects in a bucket, recursively. An empty bucket
// yields an empty slice, not an error.
func (h *Hive) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	objects := []ObjectInfo{}

	opts := minio.ListObjectsOptions{Recursive: true}
	for obj := range h.client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, remoteErr("list_objects", bucket, "", obj.Err)
		}
		objects = append(objects, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			ETag:         obj.ETag,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

// ObjectKeys returns just the keys from ListObjects.
func (h *Hive) ObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	objects, err := h.ListObjects(ctx, bucket)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// PresignedURL generates a time-limited GET URL for an object. A
// non-positive expiry defaults to DefaultPresignExpiry. The URL embeds the
// credentials' signature, so holders need no credentials of their own.
func (h *Hive) PresignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}

	u, err := h.client.PresignedGetObject(ctx, bucket, key, expiry, nil)
	if err != nil {
		return "", remoteErr("create_presigned_url", bucket, key, err)
	}

	h.logger.Debug("generated presigned url",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Duration("expiry", expiry),
	)
	return u.String(), nil
}

// Delete removes an object from a bucket and reports whether the service
// created a delete marker.
func (h *Hive) Delete(ctx context.Context, bucket, key string) (DeleteResult, error) {
	objectsCh := make(chan minio.ObjectInfo, 1)
	objectsCh <- minio.ObjectInfo{Key: key}
	close(objectsCh)

	for res := range h.client.RemoveObjectsWithResult(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if res.Err != nil {
			return DeleteResult{}, remoteErr("delete", bucket, key, res.Err)
		}
		h.logger.Debug("deleted object",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Bool("delete_marker", res.DeleteMarker),
		)
		return DeleteResult{
			DeleteMarker:          res.DeleteMarker,
			VersionID:             res.ObjectVersionID,
			DeleteMarkerVersionID: res.DeleteMarkerVersionID,
		}, nil
	}

	// The service acknowledged the batch without a per-object result.
	return DeleteResult{}, nil
}
