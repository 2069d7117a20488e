// Package hive provides a simplified facade over S3-compatible object
// storage, named after the project it grew out of.
//
// It hides the underlying SDK behind a handful of operations — bucket
// create/delete/list, object list/upload/download/delete, presigned URL
// generation — with uniform error shaping and optional transfer progress
// reporting.
//
// # Errors
//
// Every service-side failure comes back as *RemoteError carrying the
// service's structured error response. Local failures (missing upload
// source, bad ACL, filesystem trouble) are plain errors. Use errors.As to
// tell them apart:
//
//	if _, err := h.Download(ctx, "b", "k", hive.DownloadOptions{}); err != nil {
//	    var re *hive.RemoteError
//	    if errors.As(err, &re) {
//	        // re.Response.Code, re.Response.Message
//	    }
//	}
//
// # Progress
//
// Upload and Download accept a ProgressFunc invoked with per-chunk byte
// increments, decoupling transfer logic from any display mechanism. The
// CLI feeds these increments into a terminal progress bar; library callers
// can plug in anything or nothing.
//
// # Concurrency
//
// A Hive holds only immutable configuration and the shared storage client,
// so one instance may be used from multiple goroutines. No operation is
// non-blocking; use context for cancellation and deadlines.
package hive
