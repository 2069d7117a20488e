// Package storage provides the connection layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow interface covering the
// operations the hive facade needs. This abstraction supports both AWS S3
// and self-hosted S3-compatible instances, and makes storage interactions
// easy to mock for unit testing (see core/storage/mocks).
//
// # Client Interface
//
// The Client interface exposes bucket management (MakeBucket, RemoveBucket,
// ListBuckets, SetBucketPolicy), object transfer (PutObject, GetObject,
// StatObject), listing (ListObjects), deletion with per-object results
// (RemoveObjectsWithResult), and presigned URL generation
// (PresignedGetObject).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	buckets, err := client.ListBuckets(ctx)
package storage
