package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

var (
	ErrInvalidPhoneNumber  = errors.New("please enter a valid phone number")
	ErrUnsupportedFileType = errors.New("allowed file types are png, jpg, jpeg, gif")
	ErrPayloadTooLarge     = errors.New("file is too large")
)

// DefaultMaxUploadBytes caps profile pictures when no limit is configured.
const DefaultMaxUploadBytes = 2 << 20

var allowedPictureExts = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// ProfileWriter applies partial updates to a user record.
type ProfileWriter interface {
	UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error
}

// PhoneValidator checks a phone number against the configured region.
type PhoneValidator interface {
	Validate(number string) error
}

// FileStorage persists uploaded bytes under a generated name.
type FileStorage interface {
	Save(ctx context.Context, name string, data []byte) error
}

// ProfileService reads and edits user profiles.
type ProfileService struct {
	reader   UserReader
	writer   ProfileWriter
	phone    PhoneValidator
	files    FileStorage
	maxBytes int64
	now      func() time.Time
}

// ProfileOpt configures a ProfileService.
type ProfileOpt func(*ProfileService)

// WithMaxUploadBytes overrides DefaultMaxUploadBytes.
func WithMaxUploadBytes(n int64) ProfileOpt {
	return func(s *ProfileService) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// WithProfileClock replaces time.Now for upload names.
func WithProfileClock(now func() time.Time) ProfileOpt {
	return func(s *ProfileService) {
		s.now = now
	}
}

// NewProfileService creates a ProfileService.
func NewProfileService(
	reader UserReader,
	writer ProfileWriter,
	phone PhoneValidator,
	files FileStorage,
	opts ...ProfileOpt,
) *ProfileService {
	s := &ProfileService{
		reader:   reader,
		writer:   writer,
		phone:    phone,
		files:    files,
		maxBytes: DefaultMaxUploadBytes,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetProfile returns the stored user or ErrUserNotFound.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the non-blank fields of upd. The phone number is checked first
// and an invalid one rejects the whole update. An age that is not a non-negative integer
// is stored as absent. The boolean reports whether anything was written.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, bool, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if upd.IsBlank() {
		return user, false, nil
	}

	phone := strings.TrimSpace(upd.PhoneNumber)
	if phone != "" {
		if err := s.phone.Validate(phone); err != nil {
			logger.Log.Infow("rejected phone number", "userID", userID, "err", err)
			return nil, false, fmt.Errorf("%w: %v", ErrInvalidPhoneNumber, err)
		}
	}

	fields := make(map[string]any)
	if age := strings.TrimSpace(upd.Age); age != "" {
		if n, ok := parseAge(age); ok {
			fields["age"] = n
		} else {
			fields["age"] = nil
		}
	}
	for column, value := range map[string]string{
		"address":      upd.Address,
		"phone_number": upd.PhoneNumber,
		"state":        upd.State,
		"country":      upd.Country,
	} {
		if v := strings.TrimSpace(value); v != "" {
			fields[column] = v
		}
	}

	if err := s.writer.UpdateFields(ctx, userID, fields); err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, false, err
	}

	applyProfileFields(user, fields)
	return user, true, nil
}

// UploadProfilePicture stores data as the user's picture and returns the generated
// file name <userID>_<unix nanos>.<ext>.
func (s *ProfileService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, data []byte, ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if _, ok := allowedPictureExts[ext]; !ok {
		return "", ErrUnsupportedFileType
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrPayloadTooLarge
	}

	if _, err := s.GetProfile(ctx, userID); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%d.%s", userID, s.now().UTC().UnixNano(), ext)
	if err := s.files.Save(ctx, name, data); err != nil {
		logger.Log.Errorw("failed to store profile picture", "userID", userID, "err", err)
		return "", err
	}

	if err := s.writer.UpdateFields(ctx, userID, map[string]any{"profile_picture": name}); err != nil {
		logger.Log.Errorw("failed to record profile picture", "userID", userID, "err", err)
		return "", err
	}

	return name, nil
}

// parseAge accepts only plain decimal digits that fit the INTEGER age column.
func parseAge(s string) (int, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func applyProfileFields(user *models.UserDB, fields map[string]any) {
	for column, value := range fields {
		switch column {
		case "age":
			if n, ok := value.(int); ok {
				user.Age = &n
			} else {
				user.Age = nil
			}
		case "address":
			v := value.(string)
			user.Address = &v
		case "phone_number":
			v := value.(string)
			user.PhoneNumber = &v
		case "state":
			v := value.(string)
			user.State = &v
		case "country":
			v := value.(string)
			user.Country = &v
		}
	}
}
