/*
Package req provides helper functions for HTTP request parsing and data binding.

It decodes JSON bodies and multipart forms with size limits, and validates bound structs
through go-playground/validator tags.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"medconnect/internal/pkg/errs"
)

const (
	// MaxFormMemory is the in-memory budget ParseMultipartForm uses before spilling to disk.
	MaxFormMemory int64 = 8 << 20 // 8 MB

	// MaxRequestFileSize caps the whole multipart body, enforced via http.MaxBytesReader.
	MaxRequestFileSize int64 = 10 << 20 // 10 MB

	// MaxJSONBodySize caps JSON request bodies.
	MaxJSONBodySize int64 = 1 << 20 // 1 MB
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindJSON decodes the JSON request body into dst and validates it.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxJSONBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return Validate(dst)
}

// SetupMultipart parses a multipart or URL-encoded form with the configured limits.
func SetupMultipart(w http.ResponseWriter, r *http.Request) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestFileSize)

	if err := r.ParseMultipartForm(MaxFormMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}

		return errs.Wrap(errs.ErrFormParseFailed, err)
	}

	return nil
}

// Validate runs struct-tag validation on dst.
func Validate(dst any) *errs.CustomError {
	if err := validate.Struct(dst); err != nil {
		return errs.Wrap(errs.ErrInvalidParams, err)
	}
	return nil
}

// PathID parses a positive integer chi URL parameter.
func PathID(r *http.Request, name string) (int64, *errs.CustomError) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}
	return id, nil
}
