// Package blobstore provides the storage abstraction hvgo reads front files
// from and writes results to.
//
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap support
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Reading Fronts
//
// Blobs are read as a stream through ReadRange:
//
//	blob, _ := store.Open(ctx, "fronts/run-01.txt.zst")
//	defer blob.Close()
//	rc, _ := blob.ReadRange(ctx, 0, blob.Size())
//	fronts, _ := frontio.Read(rc)
package blobstore
