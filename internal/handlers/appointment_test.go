package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAppointmentHandler(t *testing.T) {
	form := AppointmentRequest{
		PatientName:     "Jane",
		PatientEmail:    "jane@example.com",
		PatientPhone:    "555-0100",
		AppointmentDate: "2024-01-01",
	}
	id := uuid.New()

	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
		expectedMsg  string
	}{
		{name: "booked", expectedCode: http.StatusCreated, expectedMsg: "Your appointment has been successfully booked!"},
		{name: "incomplete", svcErr: services.ErrIncompleteAppointment, expectedCode: http.StatusBadRequest, expectedMsg: "Please fill in all fields!"},
		{name: "store error", svcErr: errors.New("db down"), expectedCode: http.StatusInternalServerError, expectedMsg: "An error occurred while booking your appointment: db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockAppointmentBooker(ctrl)
			mockSvc.EXPECT().BookAppointment(gomock.Any(), models.AppointmentRequest{
				DoctorID:        "doc-7",
				PatientName:     form.PatientName,
				PatientEmail:    form.PatientEmail,
				PatientPhone:    form.PatientPhone,
				AppointmentDate: form.AppointmentDate,
			}).Return(id, tt.svcErr)

			r := chi.NewRouter()
			r.Post("/schedule_appointment/{doctorID}", NewScheduleAppointmentHandler(mockSvc))

			body, _ := json.Marshal(form)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/schedule_appointment/doc-7", bytes.NewBuffer(body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, firstMessage(t, rr))

			if tt.expectedCode == http.StatusCreated {
				var resp AppointmentResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, id, resp.AppointmentID)
				assert.Equal(t, "/appointments/"+id.String(), resp.Redirect)
			} else {
				assert.Equal(t, "/schedule_appointment/doc-7", decodeFlash(t, rr).Redirect)
			}
		})
	}
}

func TestConfirmAppointmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentBooker(ctrl)
	handler := NewConfirmAppointmentHandler(mockSvc)

	t.Run("confirmed without doctor", func(t *testing.T) {
		mockSvc.EXPECT().BookAppointment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.AppointmentRequest) (uuid.UUID, error) {
				assert.Empty(t, req.DoctorID)
				assert.Equal(t, "bring reports", req.Notes)
				return uuid.New(), nil
			})

		body := `{"patient_name":"Jane","patient_email":"jane@example.com","patient_phone":"1","appointment_date":"2024-01-01","notes":"bring reports"}`
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/confirm_appointment", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Appointment confirmed successfully.", firstMessage(t, rr))
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc.EXPECT().BookAppointment(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/confirm_appointment", bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Failed to confirm appointment: db down", firstMessage(t, rr))
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/confirm_appointment", bytes.NewBufferString(`nope`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListAppointmentsHandler(t *testing.T) {
	s := testSession()

	tests := []struct {
		name         string
		list         []models.Appointment
		svcErr       error
		expectedCode int
		expectedLen  int
	}{
		{name: "two appointments", list: []models.Appointment{{AppointmentID: uuid.New()}, {AppointmentID: uuid.New()}}, expectedCode: http.StatusOK, expectedLen: 2},
		{name: "none", expectedCode: http.StatusOK},
		{name: "store error", svcErr: errors.New("db down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockAppointmentViewer(ctrl)
			mockSvc.EXPECT().ListAppointments(gomock.Any(), s.Email).Return(tt.list, tt.svcErr)

			rr := httptest.NewRecorder()
			NewListAppointmentsHandler(mockSvc)(rr, withSession(httptest.NewRequest(http.MethodGet, "/appointments", nil), s))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var resp AppointmentsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.NotNil(t, resp.Appointments)
			assert.Len(t, resp.Appointments, tt.expectedLen)
		})
	}
}

func TestGetAppointmentHandler(t *testing.T) {
	s := testSession()
	id := uuid.New()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockAppointmentViewer)
		expectedCode int
	}{
		{
			name: "own appointment",
			path: id.String(),
			mockSetup: func(m *MockAppointmentViewer) {
				m.EXPECT().GetAppointment(gomock.Any(), id).Return(&models.Appointment{AppointmentID: id, PatientEmail: s.Email}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "someone else's appointment",
			path: id.String(),
			mockSetup: func(m *MockAppointmentViewer) {
				m.EXPECT().GetAppointment(gomock.Any(), id).Return(&models.Appointment{AppointmentID: id, PatientEmail: "other@example.com"}, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "unknown id",
			path: id.String(),
			mockSetup: func(m *MockAppointmentViewer) {
				m.EXPECT().GetAppointment(gomock.Any(), id).Return(nil, services.ErrAppointmentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			path:         "not-a-uuid",
			expectedCode: http.StatusNotFound,
		},
		{
			name: "store error",
			path: id.String(),
			mockSetup: func(m *MockAppointmentViewer) {
				m.EXPECT().GetAppointment(gomock.Any(), id).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockAppointmentViewer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Get("/appointments/{appointmentID}", NewGetAppointmentHandler(mockSvc))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, withSession(httptest.NewRequest(http.MethodGet, "/appointments/"+tt.path, nil), s))

			assert.Equal(t, tt.expectedCode, rr.Code)
			switch tt.expectedCode {
			case http.StatusOK:
				var resp AppointmentDetailResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, id, resp.Appointment.AppointmentID)
			case http.StatusNotFound:
				assert.Equal(t, "Appointment not found.", firstMessage(t, rr))
			}
		})
	}
}
