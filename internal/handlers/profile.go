package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/middlewares"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
)

// multipartOverhead leaves room for form boundaries and headers around the file.
const multipartOverhead = 64 << 10

// ProfileGetter loads a profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUpdater applies a partial profile edit.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, bool, error)
}

// PictureUploader stores a new profile picture.
type PictureUploader interface {
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, data []byte, ext string) (string, error)
}

// ProfileResponse carries a user profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	models.FlashResponse

	// Profile
	User *models.UserDB `json:"user"`
}

// EditProfileRequest represents a partial profile edit. Blank fields are left unchanged.
// swagger:model EditProfileRequest
type EditProfileRequest struct {
	// Age in years; anything but a non-negative integer clears it
	// default: 28
	Age string `json:"age"`

	// Address
	// default: 12 MG Road, Bengaluru
	Address string `json:"address"`

	// Phone number, validated for the configured region
	// default: 9876543210
	PhoneNumber string `json:"phone_number"`

	// State
	// default: Karnataka
	State string `json:"state"`

	// Country
	// default: India
	Country string `json:"country"`
}

// UploadPictureResponse reports the stored picture
// swagger:model UploadPictureResponse
type UploadPictureResponse struct {
	models.FlashResponse

	// Generated file name, served under /uploads/
	ProfilePicture string `json:"profile_picture"`
}

// writeUserNotFound answers for a session whose user no longer exists.
func writeUserNotFound(w http.ResponseWriter) {
	writeFlash(w, http.StatusNotFound, "User not found.", models.SeverityDanger, "/")
}

// NewProfileHandler returns the profile of the logged in user.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} models.FlashResponse "Not logged in"
// @Failure 404 {object} models.FlashResponse "User not found"
// @Router /profile [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middlewares.SessionFromContext(r.Context())

		user, err := svc.GetProfile(r.Context(), s.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeUserNotFound(w)
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/")
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{User: user})
	}
}

// NewEditProfileHandler returns an HTTP handler for partial profile edits.
// @Summary Edit profile
// @Description Applies the non-blank fields. An invalid phone number rejects the whole edit.
// @Tags profile
// @Accept json
// @Produce json
// @Param editProfileRequest body handlers.EditProfileRequest true "Fields to change"
// @Success 200 {object} handlers.ProfileResponse "Profile updated or nothing to change"
// @Failure 400 {object} models.FlashResponse "Invalid phone number or body"
// @Failure 401 {object} models.FlashResponse "Not logged in"
// @Failure 404 {object} models.FlashResponse "User not found"
// @Router /edit_profile [post]
func NewEditProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middlewares.SessionFromContext(r.Context())

		var req EditProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFlash(w, http.StatusBadRequest, "Invalid request body", models.SeverityDanger, "/edit_profile")
			return
		}

		user, changed, err := svc.UpdateProfile(r.Context(), s.UserID, models.ProfileUpdate{
			Age:         req.Age,
			Address:     req.Address,
			PhoneNumber: req.PhoneNumber,
			State:       req.State,
			Country:     req.Country,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPhoneNumber):
				writeFlash(w, http.StatusBadRequest, "Please enter a valid phone number.", models.SeverityDanger, "/edit_profile")
			case errors.Is(err, services.ErrUserNotFound):
				writeUserNotFound(w)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/edit_profile")
			}
			return
		}

		resp := ProfileResponse{User: user}
		if changed {
			resp.Flash = models.NewFlash("Profile updated successfully!", models.SeveritySuccess)
			resp.Redirect = "/profile"
		} else {
			resp.Flash = models.NewFlash("No changes were made.", models.SeverityInfo)
			resp.Redirect = "/edit_profile"
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewUploadProfilePictureHandler returns an HTTP handler for picture uploads.
// The file is read from the multipart field "profile_picture".
// @Summary Upload profile picture
// @Description Accepts png, jpg, jpeg and gif files up to the configured size.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param profile_picture formData file true "Picture"
// @Success 200 {object} handlers.UploadPictureResponse "Picture stored"
// @Failure 400 {object} models.FlashResponse "Missing file or unsupported type"
// @Failure 401 {object} models.FlashResponse "Not logged in"
// @Failure 413 {object} models.FlashResponse "File too large"
// @Router /upload_profile_picture [post]
func NewUploadProfilePictureHandler(svc PictureUploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middlewares.SessionFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		file, header, err := r.FormFile("profile_picture")
		if err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				writeFlash(w, http.StatusRequestEntityTooLarge, "File is too large.", models.SeverityDanger, "/profile")
			default:
				writeFlash(w, http.StatusBadRequest, "No file part", models.SeverityDanger, "/profile")
			}
			return
		}
		defer file.Close()

		if header.Filename == "" {
			writeFlash(w, http.StatusBadRequest, "No selected file", models.SeverityDanger, "/profile")
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if err != nil {
			logger.Log.Errorw("failed to read upload", "err", err)
			writeFlash(w, http.StatusBadRequest, "No file part", models.SeverityDanger, "/profile")
			return
		}

		name, err := svc.UploadProfilePicture(r.Context(), s.UserID, data, filepath.Ext(header.Filename))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedFileType):
				writeFlash(w, http.StatusBadRequest, "Allowed file types are png, jpg, jpeg, gif", models.SeverityDanger, "/profile")
			case errors.Is(err, services.ErrPayloadTooLarge):
				writeFlash(w, http.StatusRequestEntityTooLarge, "File is too large.", models.SeverityDanger, "/profile")
			case errors.Is(err, services.ErrUserNotFound):
				writeUserNotFound(w)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/profile")
			}
			return
		}

		writeJSON(w, http.StatusOK, UploadPictureResponse{
			FlashResponse: models.FlashResponse{
				Flash:    models.NewFlash("Profile picture uploaded successfully!", models.SeveritySuccess),
				Redirect: "/profile",
			},
			ProfilePicture: name,
		})
	}
}
