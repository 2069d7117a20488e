package hive

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

// RemoteError is the single error kind returned for service-side failures.
// It wraps the structured error response reported by the storage service;
// callers that need the original SDK error can unwrap it. Local failures
// (missing source file, invalid ACL, filesystem errors) are returned as
// plain errors and never as RemoteError.
type RemoteError struct {
	// Op is the facade operation that failed (e.g. "upload").
	Op string
	// Bucket and Key identify the target; Key is empty for bucket operations.
	Bucket string
	Key    string
	// Response is the structured error payload from the service.
	Response minio.ErrorResponse
	// Err is the original error from the storage client.
	Err error
}

func (e *RemoteError) Error() string {
	target := e.Bucket
	if e.Key != "" {
		target = e.Bucket + "/" + e.Key
	}
	if e.Response.Code != "" {
		return fmt.Sprintf("hive: %s %s: %s: %s", e.Op, target, e.Response.Code, e.Response.Message)
	}
	return fmt.Sprintf("hive: %s %s: %v", e.Op, target, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// remoteErr wraps a storage client error into a RemoteError.
// Returns nil for a nil error.
func remoteErr(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{
		Op:       op,
		Bucket:   bucket,
		Key:      key,
		Response: minio.ToErrorResponse(err),
		Err:      err,
	}
}
