package model

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// File is an object stored in MinIO, currently used for archived report exports.
type File struct {
	BaseModel
	FileName       string `gorm:"type:text;not null" json:"fileName"`
	UniqueFileName string `gorm:"type:text;not null;uniqueIndex" json:"uniqueFileName"`
	BucketName     string `gorm:"type:text;not null" json:"bucketName"`
	Size           int64  `gorm:"type:bigint;not null" json:"size"`
	CreatedByID    string `gorm:"type:text;not null" json:"createdById"`
}

func (f File) TableName() string {
	return "files"
}

// How long a download link handed out for an archived report stays valid
const ReportLinkTTL = time.Hour

var ErrFileNotStored = errors.New("file has no bucket or object name")

// Presigned GET link to the object, valid for ttl. The attachment filename is the original one.
func (f File) PresignedURL(ctx context.Context, s3 *minio.Client, ttl time.Duration) (string, error) {
	if f.BucketName == "" || f.UniqueFileName == "" {
		return "", ErrFileNotStored
	}

	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", f.FileName))

	presigned, err := s3.PresignedGetObject(ctx, f.BucketName, f.UniqueFileName, ttl, params)
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
