/*
Package storage persists uploaded profile images.

Two backends implement StorageService: an S3-compatible bucket and a local directory. Keys are
slash-separated relative paths such as "profiles/<uuid>.png".
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Drivers accepted by ServiceConfig.Driver.
const (
	DriverDisk = "disk"
	DriverS3   = "s3"
)

// ErrObjectNotFound is returned by Open and Delete for an unknown key.
var ErrObjectNotFound = errors.New("object not found")

// ErrInvalidKey is returned for keys that are empty or escape the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	Driver            string
	UploadDir         string
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// StorageService defines the public interface for the file storage service.
type StorageService interface {
	// Put stores size bytes from body under key.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Open returns a reader for the object stored under key. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the file specified by the given key.
	Delete(ctx context.Context, key string) error
}

// NewStorageService is the factory function for StorageService.
func NewStorageService(ctx context.Context, cfg ServiceConfig) (StorageService, error) {
	switch cfg.Driver {
	case DriverS3:
		return newS3Client(ctx, cfg)
	case DriverDisk, "":
		return newDiskStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
