package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/middlewares"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/stretchr/testify/require"
)

var testCookie = SessionCookie{Name: "session_id", TTL: time.Hour}

func testSession() *models.Session {
	return &models.Session{UserID: uuid.New(), Username: "jane", Email: "jane@example.com"}
}

func withSession(r *http.Request, s *models.Session) *http.Request {
	return r.WithContext(middlewares.WithSession(r.Context(), "sid", s))
}

func decodeFlash(t *testing.T, rr *httptest.ResponseRecorder) models.FlashResponse {
	t.Helper()
	var resp models.FlashResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func firstMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeFlash(t, rr)
	require.NotEmpty(t, resp.Flash)
	return resp.Flash[0].Message
}
