package filestorage

import (
	"errors"

	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrStorageDisabled = errors.New("object storage is not configured")

// Report archives are the only objects stored, so a missing endpoint disables storage.
func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	if !cfg.Enabled() {
		return nil, ErrStorageDisabled
	}

	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}
