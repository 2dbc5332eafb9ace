package sources

import (
	"context"
	"fmt"
	"path"

	"tvgu-data-hub/core/storage"
	"tvgu-data-hub/feature/hub/models"

	"github.com/minio/minio-go/v7"
)

// Bucket reads the upstream documents from object storage under a prefix.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucket creates a bucket source.
func NewBucket(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{client: client, bucket: bucket, prefix: prefix}
}

func getObject[T any](ctx context.Context, b *Bucket, name string) (T, error) {
	var zero T

	objectName := path.Join(b.prefix, name)
	reader, err := b.client.GetObject(ctx, b.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return zero, fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	defer reader.Close()

	return decode[T](reader, objectName)
}

// LoadStructs downloads structs.json.
func (b *Bucket) LoadStructs(ctx context.Context) ([]models.Struct, error) {
	return getObject[[]models.Struct](ctx, b, StructsDocument)
}

// LoadTeachers downloads teachers.json.
func (b *Bucket) LoadTeachers(ctx context.Context) ([]models.Teacher, error) {
	return getObject[[]models.Teacher](ctx, b, TeachersDocument)
}

// LoadSchedules downloads schedules.json.
func (b *Bucket) LoadSchedules(ctx context.Context) (models.Schedules, error) {
	return getObject[models.Schedules](ctx, b, SchedulesDocument)
}
