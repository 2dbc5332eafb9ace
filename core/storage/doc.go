// Package storage wraps the MinIO client for the object storage used by the bucket
// source and the dataset upload. Both AWS S3 and self-hosted MinIO are supported.
//
// The Client interface narrows minio.Client to the calls the hub needs, so tests can
// substitute core/storage/mocks.Client.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
