package hive

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Canned ACLs accepted by CreateBucket.
const (
	ACLPrivate         = "private"
	ACLPublicRead      = "public-read"
	ACLPublicReadWrite = "public-read-write"
)

// BucketInfo describes a bucket from a listing.
type BucketInfo struct {
	Name      string
	CreatedAt time.Time
}

// CreateBucket creates a bucket in the configured region. An empty acl
// defaults to private. Public ACLs are applied as canned bucket policies;
// an unrecognized acl is rejected before any network call.
func (h *Hive) CreateBucket(ctx context.Context, bucket, acl string) error {
	if acl == "" {
		acl = ACLPrivate
	}
	switch acl {
	case ACLPrivate, ACLPublicRead, ACLPublicReadWrite:
	default:
		return fmt.Errorf("hive: create_bucket %s: unsupported acl %q", bucket, acl)
	}

	opts := minio.MakeBucketOptions{Region: h.cfg.Region}
	if err := h.client.MakeBucket(ctx, bucket, opts); err != nil {
		return remoteErr("create_bucket", bucket, "", err)
	}

	if acl != ACLPrivate {
		if err := h.client.SetBucketPolicy(ctx, bucket, cannedPolicy(bucket, acl)); err != nil {
			return remoteErr("create_bucket", bucket, "", err)
		}
	}

	h.logger.Debug("created bucket",
		zap.String("bucket", bucket),
		zap.String("acl", acl),
	)
	return nil
}

// DeleteBucket deletes a bucket. The service rejects non-empty buckets.
func (h *Hive) DeleteBucket(ctx context.Context, bucket string) error {
	if err := h.client.RemoveBucket(ctx, bucket); err != nil {
		return remoteErr("delete_bucket", bucket, "", err)
	}
	h.logger.Debug("deleted bucket", zap.String("bucket", bucket))
	return nil
}

// ListBuckets lists all buckets visible to the configured credentials.
func (h *Hive) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	raw, err := h.client.ListBuckets(ctx)
	if err != nil {
		return nil, remoteErr("list_buckets", "", "", err)
	}

	buckets := make([]BucketInfo, 0, len(raw))
	for _, b := range raw {
		buckets = append(buckets, BucketInfo{
			Name:      b.Name,
			CreatedAt: b.CreationDate,
		})
	}
	return buckets, nil
}

// BucketNames returns just the names from ListBuckets.
func (h *Hive) BucketNames(ctx context.Context) ([]string, error) {
	buckets, err := h.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names, nil
}

// cannedPolicy builds the bucket policy document for a public ACL.
func cannedPolicy(bucket, acl string) string {
	actions := `"s3:GetObject"`
	if acl == ACLPublicReadWrite {
		actions = `"s3:GetObject","s3:PutObject","s3:DeleteObject"`
	}
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":[%s],"Resource":["arn:aws:s3:::%s/*"]}]}`, actions, bucket)
}
