package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pregnancy-care/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestUploadsHandler(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		openErr      error
		expectedCode int
		expectedType string
		expectedBody string
	}{
		{name: "png served", file: "pic.png", expectedCode: http.StatusOK, expectedType: "image/png", expectedBody: "img"},
		{name: "unknown extension", file: "pic.bin", expectedCode: http.StatusOK, expectedType: "application/octet-stream", expectedBody: "img"},
		{name: "missing", file: "gone.png", openErr: storage.ErrNotFound, expectedCode: http.StatusNotFound},
		{name: "bad name", file: "..", openErr: storage.ErrInvalidName, expectedCode: http.StatusBadRequest},
		{name: "backend down", file: "pic.png", openErr: errors.New("s3 down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFiles := NewMockFileOpener(ctrl)
			if tt.openErr != nil {
				mockFiles.EXPECT().Open(gomock.Any(), tt.file).Return(nil, tt.openErr)
			} else {
				mockFiles.EXPECT().Open(gomock.Any(), tt.file).Return(io.NopCloser(strings.NewReader("img")), nil)
			}

			r := chi.NewRouter()
			r.Get("/uploads/{name}", NewUploadsHandler(mockFiles))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/"+tt.file, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedType, rr.Header().Get("Content-Type"))
				assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
