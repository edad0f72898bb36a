package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"hr-sync/core/storage"
	"hr-sync/feature/integration/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// S3Sink archives the JSON artifact of a run to an object storage bucket.
type S3Sink struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewS3Sink creates a sink uploading into the given bucket.
func NewS3Sink(client storage.Client, bucket string, logger *zap.Logger) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Write implements Sink.
func (s *S3Sink) Write(ctx context.Context, r *models.RunReport) error {
	artifact := NewArtifact(r)

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check report bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create report bucket: %w", err)
		}
	}

	objectName := "reports/" + artifact.ID + ".json"
	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload report %s: %w", artifact.ID, err)
	}

	s.logger.Info("Report archived to object storage",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName))
	return nil
}
