// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("fronts/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
// # Features
//
//   - Range reads for streaming front files
//   - Multipart uploads for large results
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
