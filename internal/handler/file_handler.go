package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"medconnect/internal/app/storage"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/resp"
)

// HandleServeUpload streams a stored object addressed by the wildcard path.
func HandleServeUpload(storageService storage.StorageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		if key == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrResourceNotFound))
			return
		}

		body, info, err := storageService.Open(r.Context(), key)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidKey) {
				resp.RespondError(w, r, errs.NewError(errs.ErrResourceNotFound))
				return
			}
			logx.Error(err, "failed to open upload", "key", key)
			resp.RespondError(w, r, errs.Wrap(errs.ErrFileStorageFailed, err))
			return
		}
		defer body.Close()

		if info.ContentType != "" {
			w.Header().Set("Content-Type", info.ContentType)
		}
		if info.Size > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "public, max-age=86400")

		if _, err := io.Copy(w, body); err != nil {
			logx.Warn("upload stream interrupted", "key", key, "error", err.Error())
		}
	}
}
