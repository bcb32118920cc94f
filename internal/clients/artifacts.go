package clients

import (
	"context"
	"time"
)

// LocalArtifactStore serves artifacts from the local filesystem through the
// public /files route.
type LocalArtifactStore struct {
	Storage *StorageClient
}

func (s *LocalArtifactStore) Save(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	saved, err := s.Storage.Save(ctx, fileName, data)
	if err != nil {
		return "", err
	}
	return s.Storage.GetURL(saved), nil
}

// S3ArtifactStore uploads artifacts to object storage and returns a presigned
// link valid for the export TTL.
type S3ArtifactStore struct {
	S3      *S3Client
	LinkTTL time.Duration
}

func (s *S3ArtifactStore) Save(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	key, err := s.S3.Upload(ctx, fileName, data, contentType)
	if err != nil {
		return "", err
	}
	ttl := s.LinkTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	return s.S3.GetTemporaryURL(ctx, key, ttl)
}
