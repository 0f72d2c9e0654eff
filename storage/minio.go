package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"ArtLens/config"
	"ArtLens/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var minioClient *minio.Client

// InitMinio initializes the MinIO client and ensures the asset bucket exists.
func InitMinio(cfg *config.Config) error {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return fmt.Errorf("failed to check asset bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: cfg.MinioRegion}); err != nil {
			return fmt.Errorf("failed to create asset bucket: %w", err)
		}
		logger.Info("asset bucket created", logger.String("bucket", cfg.MinioBucket))
	}

	minioClient = client
	logger.Info("MinIO connected", logger.String("endpoint", cfg.MinioEndpoint), logger.String("bucket", cfg.MinioBucket))
	return nil
}

// GetMinioClient returns the shared MinIO client, or nil if not initialized.
func GetMinioClient() *minio.Client {
	return minioClient
}

// AssetStore serves downloadable asset URLs for 3D models. It is the
// production implementation of the viewer's asset deriver.
type AssetStore struct {
	client *minio.Client
	bucket string
	// defaultObject is served when a model carries no external catalog id.
	defaultObject string
}

// NewAssetStore creates an asset store on the shared MinIO client.
func NewAssetStore(cfg *config.Config) *AssetStore {
	return &AssetStore{
		client:        minioClient,
		bucket:        cfg.MinioBucket,
		defaultObject: cfg.DefaultModelObject,
	}
}

// CatalogObjectKey maps an external-catalog identifier to its object key.
// The mapping is deterministic so repeated derivations agree.
func CatalogObjectKey(catalogID string) string {
	return path.Join("models", "catalog", catalogID+".glb")
}

// DeriveAssetURL returns a presigned download URL for the model asset.
// Models with an external catalog id resolve to their catalog object;
// everything else falls back to the fixed default asset.
func (s *AssetStore) DeriveAssetURL(ctx context.Context, catalogID string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("MinIO client not initialized")
	}

	object := s.defaultObject
	if catalogID != "" {
		object = CatalogObjectKey(catalogID)
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, object, 24*time.Hour, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign asset %s: %w", object, err)
	}
	return u.String(), nil
}

// UploadAsset stores a model or texture file under the given object key.
func (s *AssetStore) UploadAsset(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	if s.client == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload asset %s: %w", objectName, err)
	}

	logger.Info("asset uploaded", logger.String("object", objectName), logger.Int64("size", size))
	return nil
}
