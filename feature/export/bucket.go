package export

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"tvgu-data-hub/core/storage"

	"github.com/minio/minio-go/v7"
)

// Upload stores encoded data as prefix/name in bucket.
func Upload(ctx context.Context, client storage.Client, bucket, prefix, name string, data []byte) (string, error) {
	objectName := path.Join(prefix, name)

	_, err := client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return objectName, nil
}
