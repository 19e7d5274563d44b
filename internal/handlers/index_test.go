package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCurrentUserer(ctrl)
	handler := NewIndexHandler(mockSvc)

	t.Run("anonymous", func(t *testing.T) {
		mockSvc.EXPECT().CurrentUser(gomock.Any(), (*models.Session)(nil)).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user":null}`, rr.Body.String())
	})

	t.Run("logged in", func(t *testing.T) {
		s := testSession()
		user := &models.UserDB{UserID: s.UserID, Username: s.Username, Email: s.Email, PasswordHash: "hash"}
		mockSvc.EXPECT().CurrentUser(gomock.Any(), s).Return(user, nil)

		rr := httptest.NewRecorder()
		handler(rr, withSession(httptest.NewRequest(http.MethodGet, "/", nil), s))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hash")
		var resp IndexResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "jane", resp.User.Username)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc.EXPECT().CurrentUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
