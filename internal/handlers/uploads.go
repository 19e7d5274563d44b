package handlers

//go:generate mockgen -source=uploads.go -destination=uploads_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/storage"
)

// FileOpener reads stored uploads.
type FileOpener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// NewUploadsHandler serves stored profile pictures by file name.
// @Summary Get uploaded file
// @Tags profile
// @Produce octet-stream
// @Param name path string true "File name"
// @Success 200 {file} binary
// @Failure 400 {string} string "Invalid file name"
// @Failure 404 {string} string "Not found"
// @Router /uploads/{name} [get]
func NewUploadsHandler(files FileOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		rc, err := files.Open(r.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidName):
				http.Error(w, "invalid file name", http.StatusBadRequest)
			case errors.Is(err, storage.ErrNotFound):
				http.NotFound(w, r)
			default:
				logger.Log.Errorw("failed to open upload", "name", name, "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		defer rc.Close()

		contentType := mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Content-Type-Options", "nosniff")

		if _, err := io.Copy(w, rc); err != nil {
			logger.Log.Errorw("failed to stream upload", "name", name, "err", err)
		}
	}
}
