package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists     = errors.New("username or email already exists")
	ErrEmailAlreadyExists    = fmt.Errorf("%w: email already in use", ErrUserAlreadyExists)
	ErrUsernameAlreadyExists = fmt.Errorf("%w: username already taken", ErrUserAlreadyExists)
	ErrMissingFields         = errors.New("please fill in all fields")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUnauthenticated       = errors.New("not logged in")
	ErrUserNotFound          = errors.New("user not found")
)

// UserReader defines read-only operations for users.
// Lookups return nil without error when nothing matches.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// SessionStore keeps server-side sessions by opaque id.
type SessionStore interface {
	Create(ctx context.Context, s models.Session) (string, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthService handles registration, login and sessions.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
	}
}

// VerifyPassword reports whether raw matches the user's stored hash.
func VerifyPassword(user *models.UserDB, raw string) bool {
	if user == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(raw)) == nil
}

// Register creates a new user. The existence checks run before the insert and the
// unique constraints on users catch whatever races past them.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (*models.UserDB, error) {
	email, username = strings.TrimSpace(email), strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return nil, ErrMissingFields
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already in use", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return nil, ErrUsernameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			logger.Log.Infow("concurrent signup rejected by constraint", "username", username, "err", err)
			return nil, fmt.Errorf("%w: %v", ErrUserAlreadyExists, err)
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// StartSession binds a new session to user and returns its id.
func (svc *AuthService) StartSession(ctx context.Context, user *models.UserDB) (string, *models.Session, error) {
	s := models.NewSession(user)
	id, err := svc.sessions.Create(ctx, s)
	if err != nil {
		logger.Log.Errorw("failed to create session", "userID", user.UserID, "err", err)
		return "", nil, err
	}
	return id, &s, nil
}

// Login authenticates by username and password and starts a session.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.Session, error) {
	username = strings.TrimSpace(username)
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if !VerifyPassword(user, password) {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	return svc.StartSession(ctx, user)
}

// Logout ends the session. Logging out without a session succeeds.
func (svc *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}

// Session resolves a session id. Unknown, expired and partial sessions yield nil.
func (svc *AuthService) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	s, err := svc.sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to load session", "err", err)
		return nil, err
	}
	if !s.Valid() {
		return nil, nil
	}
	return s, nil
}

// CurrentUser resolves the session back to the stored user.
// It returns nil when the session is not valid or the user is gone.
func (svc *AuthService) CurrentUser(ctx context.Context, s *models.Session) (*models.UserDB, error) {
	if !s.Valid() {
		return nil, nil
	}
	user, err := svc.reader.GetByID(ctx, s.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get current user", "userID", s.UserID, "err", err)
		return nil, err
	}
	return user, nil
}
