package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	valid := &models.Session{UserID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name        string
		prepare     func(r *http.Request)
		mockSetup   func(m *MockSessionResolver)
		wantID      string
		wantSession *models.Session
	}{
		{
			name:      "NoSession",
			prepare:   func(r *http.Request) {},
			mockSetup: func(m *MockSessionResolver) {},
		},
		{
			name: "Cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_id", Value: "sid-cookie"})
			},
			mockSetup: func(m *MockSessionResolver) {
				m.EXPECT().Session(gomock.Any(), "sid-cookie").Return(valid, nil)
			},
			wantID:      "sid-cookie",
			wantSession: valid,
		},
		{
			name: "BearerHeader",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer sid-header")
			},
			mockSetup: func(m *MockSessionResolver) {
				m.EXPECT().Session(gomock.Any(), "sid-header").Return(valid, nil)
			},
			wantID:      "sid-header",
			wantSession: valid,
		},
		{
			name: "ExpiredSession",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_id", Value: "gone"})
			},
			mockSetup: func(m *MockSessionResolver) {
				m.EXPECT().Session(gomock.Any(), "gone").Return(nil, nil)
			},
			wantID: "gone",
		},
		{
			name: "StoreError",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_id", Value: "sid"})
			},
			mockSetup: func(m *MockSessionResolver) {
				m.EXPECT().Session(gomock.Any(), "sid").Return(nil, errors.New("redis down"))
			},
			wantID: "sid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := NewMockSessionResolver(ctrl)
			tt.mockSetup(resolver)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, tt.wantID, SessionIDFromContext(r.Context()))
				assert.Equal(t, tt.wantSession, SessionFromContext(r.Context()))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			rr := httptest.NewRecorder()

			SessionMiddleware(resolver, "session_id")(next).ServeHTTP(rr, req)

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := RequireAuth("Please log in to view your profile.")(next)

	t.Run("Anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var body models.FlashResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "/login", body.Redirect)
		require.Len(t, body.Flash, 1)
		assert.Equal(t, "Please log in to view your profile.", body.Flash[0].Message)
		assert.Equal(t, models.SeverityWarning, body.Flash[0].Severity)
	})

	t.Run("PartialSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req = req.WithContext(WithSession(req.Context(), "sid", &models.Session{Username: "alice"}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Authenticated", func(t *testing.T) {
		s := &models.Session{UserID: uuid.New(), Username: "alice", Email: "alice@example.com"}
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req = req.WithContext(WithSession(req.Context(), "sid", s))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}
