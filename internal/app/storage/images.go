package storage

import (
	"context"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/randx"
)

const (
	// MaxImageSizeMB is the largest accepted profile picture in megabytes.
	MaxImageSizeMB = 5

	// MaxImageSize is MaxImageSizeMB in bytes.
	MaxImageSize = MaxImageSizeMB * 1024 * 1024

	// ProfileImagePrefix groups profile pictures in the store.
	ProfileImagePrefix = "profiles"
)

// DetectImage sniffs the leading bytes of file and returns its MIME type and extension.
// The read position is restored before returning.
func DetectImage(file io.ReadSeeker, size int64) (mimeType, ext string, customErr *errs.CustomError) {
	if size <= 0 {
		return "", "", errs.NewError(errs.ErrFileTypeInvalid)
	}
	if size > MaxImageSize {
		return "", "", errs.NewError(errs.ErrFileSizeTooLarge, MaxImageSizeMB)
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", "", errs.Wrap(errs.ErrFileTypeInvalid, err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", "", errs.Wrap(errs.ErrFileStorageFailed, err)
	}

	if !strings.HasPrefix(detected.String(), "image/") {
		return "", "", errs.NewError(errs.ErrFileTypeInvalid)
	}

	return detected.String(), detected.Extension(), nil
}

// StoreImage validates an uploaded image and stores it under a fresh key with the given prefix.
func StoreImage(ctx context.Context, svc StorageService, prefix string, file io.ReadSeeker, size int64) (string, *errs.CustomError) {
	mimeType, ext, customErr := DetectImage(file, size)
	if customErr != nil {
		return "", customErr
	}

	key := randx.UploadKey(prefix, ext)
	if err := svc.Put(ctx, key, file, size, mimeType); err != nil {
		return "", errs.Wrap(errs.ErrFileStorageFailed, err)
	}

	return key, nil
}
