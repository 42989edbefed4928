// Package storage wraps the MinIO client behind a small interface.
//
// Production snapshots are delivered to an object storage bucket rather than
// the local filesystem; this package provides the download path for the
// reconciler and the upload path for the fixture generator. The interface is
// kept minimal so tests can substitute the mock in storage/mocks.
package storage
