package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		username  string
		password  string
		byEmail   *models.UserDB
		byName    *models.UserDB
		readerErr error
		expectIns bool
		writerErr error
		wantErr   error
	}{
		{
			name:      "successful registration",
			email:     "alice@example.com",
			username:  "alice",
			password:  "pass123",
			expectIns: true,
		},
		{
			name:     "email already in use",
			email:    "bob@example.com",
			username: "bob",
			password: "pass123",
			byEmail:  &models.UserDB{UserID: uuid.New()},
			wantErr:  services.ErrEmailAlreadyExists,
		},
		{
			name:     "username already taken",
			email:    "carol@example.com",
			username: "carol",
			password: "pass123",
			byName:   &models.UserDB{UserID: uuid.New()},
			wantErr:  services.ErrUsernameAlreadyExists,
		},
		{
			name:      "insert rejected by unique constraint",
			email:     "dave@example.com",
			username:  "dave",
			password:  "pass123",
			expectIns: true,
			writerErr: fmt.Errorf("%w: users_username_key", models.ErrAlreadyExists),
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "frank@example.com",
			username:  "frank",
			password:  "pass123",
			expectIns: true,
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockSessions := services.NewMockSessionStore(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockSessions)

			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.byEmail, tt.readerErr)
			if tt.byEmail == nil && tt.readerErr == nil {
				mockReader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.byName, nil)
			}

			var saved *models.UserDB
			if tt.expectIns {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) error {
						saved = u
						return tt.writerErr
					})
			}

			user, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, services.ErrUserAlreadyExists) {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Same(t, saved, user)
			assert.NotEqual(t, uuid.Nil, user.UserID)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.username, user.Username)
			assert.NotEqual(t, tt.password, user.PasswordHash)
			assert.True(t, services.VerifyPassword(user, tt.password))
			assert.False(t, services.VerifyPassword(user, tt.password+"x"))
		})
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockSessionStore(ctrl),
	)

	for _, in := range [][3]string{
		{"", "alice", "pw"},
		{"alice@example.com", "  ", "pw"},
		{"alice@example.com", "alice", ""},
	} {
		_, err := svc.Register(context.Background(), in[0], in[1], in[2])
		assert.ErrorIs(t, err, services.ErrMissingFields)
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	stored := &models.UserDB{
		UserID:       userID,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: hashed(t, "pass123"),
	}

	tests := []struct {
		name       string
		username   string
		password   string
		user       *models.UserDB
		readerErr  error
		sessionErr error
		wantErr    error
	}{
		{name: "success", username: "alice", password: "pass123", user: stored},
		{name: "username padded as at signup", username: " alice ", password: "pass123", user: stored},
		{name: "unknown user", username: "ghost", password: "pass123", wantErr: services.ErrInvalidCredentials},
		{name: "wrong password", username: "alice", password: "nope", user: stored, wantErr: services.ErrInvalidCredentials},
		{name: "reader error", username: "alice", password: "pass123", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "session store error", username: "alice", password: "pass123", user: stored, sessionErr: errors.New("redis down"), wantErr: errors.New("redis down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockSessions := services.NewMockSessionStore(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockSessions)

			mockReader.EXPECT().GetByUsername(gomock.Any(), strings.TrimSpace(tt.username)).Return(tt.user, tt.readerErr)
			if tt.user != nil && tt.password == "pass123" {
				mockSessions.EXPECT().
					Create(gomock.Any(), models.Session{UserID: userID, Username: "alice", Email: "alice@example.com"}).
					Return("sid-1", tt.sessionErr)
			}

			id, s, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, id)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "sid-1", id)
			require.NotNil(t, s)
			assert.True(t, s.Valid())
			assert.Equal(t, userID, s.UserID)
		})
	}
}

func TestAuthService_LoginThenCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockSessions)

	user := &models.UserDB{UserID: uuid.New(), Email: "a@example.com", Username: "a", PasswordHash: hashed(t, "pw")}
	mockReader.EXPECT().GetByUsername(gomock.Any(), "a").Return(user, nil)
	mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return("sid", nil)
	mockReader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)

	_, s, err := svc.Login(context.Background(), "a", "pw")
	require.NoError(t, err)

	current, err := svc.CurrentUser(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, user, current)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessionStore(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockSessions)

	// Not logged in: nothing to delete.
	assert.NoError(t, svc.Logout(context.Background(), ""))

	mockSessions.EXPECT().Delete(gomock.Any(), "sid").Return(nil).Times(2)
	assert.NoError(t, svc.Logout(context.Background(), "sid"))
	assert.NoError(t, svc.Logout(context.Background(), "sid"))

	mockSessions.EXPECT().Delete(gomock.Any(), "broken").Return(errors.New("redis down"))
	assert.Error(t, svc.Logout(context.Background(), "broken"))
}

func TestAuthService_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessionStore(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockSessions)
	ctx := context.Background()

	s, err := svc.Session(ctx, "")
	assert.NoError(t, err)
	assert.Nil(t, s)

	valid := &models.Session{UserID: uuid.New(), Username: "a", Email: "a@example.com"}
	mockSessions.EXPECT().Get(gomock.Any(), "valid").Return(valid, nil)
	s, err = svc.Session(ctx, "valid")
	assert.NoError(t, err)
	assert.Equal(t, valid, s)

	partial := &models.Session{UserID: uuid.New(), Username: "a"}
	mockSessions.EXPECT().Get(gomock.Any(), "partial").Return(partial, nil)
	s, err = svc.Session(ctx, "partial")
	assert.NoError(t, err)
	assert.Nil(t, s)

	mockSessions.EXPECT().Get(gomock.Any(), "gone").Return(nil, nil)
	s, err = svc.Session(ctx, "gone")
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockSessionStore(ctrl))
	ctx := context.Background()

	// Absent and partial sessions never reach the store.
	u, err := svc.CurrentUser(ctx, nil)
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.CurrentUser(ctx, &models.Session{Username: "a", Email: "a@example.com"})
	assert.NoError(t, err)
	assert.Nil(t, u)

	// Session pointing at a deleted user.
	stale := &models.Session{UserID: uuid.New(), Username: "a", Email: "a@example.com"}
	mockReader.EXPECT().GetByID(gomock.Any(), stale.UserID).Return(nil, nil)
	u, err = svc.CurrentUser(ctx, stale)
	assert.NoError(t, err)
	assert.Nil(t, u)

	mockReader.EXPECT().GetByID(gomock.Any(), stale.UserID).Return(nil, errors.New("db error"))
	_, err = svc.CurrentUser(ctx, stale)
	assert.EqualError(t, err, "db error")
}

func TestAuthService_StartSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessionStore(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockSessions)

	user := &models.UserDB{UserID: uuid.New(), Email: "new@example.com", Username: "new"}
	mockSessions.EXPECT().Create(gomock.Any(), models.NewSession(user)).Return("sid", nil)

	id, s, err := svc.StartSession(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "sid", id)
	assert.Equal(t, user.Email, s.Email)
}

func TestVerifyPassword_NilUser(t *testing.T) {
	assert.False(t, services.VerifyPassword(nil, "pw"))
}
