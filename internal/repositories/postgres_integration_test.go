package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pregnancy-care/internal/migrations"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a disposable Postgres with the service schema applied.
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Up(ctx, db.DB))
	return db
}

func TestPostgres_UserLifecycle(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	reader := NewUserReadRepository(db, nil)
	writer := NewUserWriteRepository(db, nil)

	alice := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", Username: "alice", PasswordHash: "hash"}
	require.NoError(t, writer.Save(ctx, alice))

	dupEmail := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", Username: "alice2", PasswordHash: "hash"}
	assert.ErrorIs(t, writer.Save(ctx, dupEmail), models.ErrAlreadyExists)

	dupName := &models.UserDB{UserID: uuid.New(), Email: "other@example.com", Username: "alice", PasswordHash: "hash"}
	assert.ErrorIs(t, writer.Save(ctx, dupName), models.ErrAlreadyExists)

	require.NoError(t, writer.UpdateFields(ctx, alice.UserID, map[string]any{
		"age":     31,
		"address": "12 MG Road",
	}))
	require.NoError(t, writer.UpdateFields(ctx, alice.UserID, map[string]any{"country": "India"}))
	require.NoError(t, writer.UpdatePassword(ctx, "alice@example.com", "newhash"))

	got, err := reader.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, alice.UserID, got.UserID)
	assert.Equal(t, "newhash", got.PasswordHash)
	require.NotNil(t, got.Age)
	assert.Equal(t, 31, *got.Age)
	require.NotNil(t, got.Address)
	assert.Equal(t, "12 MG Road", *got.Address)
	require.NotNil(t, got.Country)
	assert.Nil(t, got.PhoneNumber)

	missing, err := reader.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgres_AppointmentsWithoutDoctorCheck(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	writer := NewAppointmentWriteRepository(db)
	reader := NewAppointmentReadRepository(db)

	doctorID := "nonexistent-doctor-id"
	a := &models.Appointment{
		AppointmentID:   uuid.New(),
		DoctorID:        &doctorID,
		PatientName:     "Jane",
		PatientEmail:    "jane@x.com",
		PatientPhone:    "555-0100",
		AppointmentDate: "2024-01-01",
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, writer.Save(ctx, a))

	got, err := reader.GetByID(ctx, a.AppointmentID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane", got.PatientName)
	assert.Equal(t, doctorID, *got.DoctorID)

	list, err := reader.ListByPatientEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	longDoctorID := strings.Repeat("x", 70)
	long := &models.Appointment{
		AppointmentID:   uuid.New(),
		DoctorID:        &longDoctorID,
		PatientName:     "Jane",
		PatientEmail:    "jane@x.com",
		PatientPhone:    "+91 98765 43210 ext. 1234, ask for the ward desk",
		AppointmentDate: "sometime in the second half of " + strings.Repeat("next month ", 8),
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, writer.Save(ctx, long))

	got, err = reader.GetByID(ctx, long.AppointmentID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, longDoctorID, *got.DoctorID)
	assert.Equal(t, long.AppointmentDate, got.AppointmentDate)
	assert.Equal(t, long.PatientPhone, got.PatientPhone)

	var doctors []models.Doctor
	for d, err := range NewDoctorReadRepository(db).All(ctx) {
		require.NoError(t, err)
		doctors = append(doctors, d)
	}
	assert.Empty(t, doctors)
}
