// Package minio stores front files and results in MinIO or any other
// S3-compatible object store.
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "fronts",
//	})
//
// Reads use ranged GETs so large front files can be streamed through
// frontio without buffering the whole object.
package minio
