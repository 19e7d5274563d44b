package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"doctor_id", "name", "specialization", "location", "available"})
	for i, id := range ids {
		rows.AddRow(id.String(), []string{"Dr. Asha", "Dr. Meera"}[i%2], "Gynecologist", "Pune", i%2 == 0)
	}
	return rows
}

func TestDoctorReadRepository_All(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReadRepository(db)

	first, second := uuid.New(), uuid.New()
	query := regexp.QuoteMeta("SELECT doctor_id, name, specialization, location, available")

	// The sequence re-queries on every range.
	mock.ExpectQuery(query).WillReturnRows(doctorRows(first, second))
	mock.ExpectQuery(query).WillReturnRows(doctorRows(first, second))

	seq := repo.All(context.Background())

	for range 2 {
		var got []models.Doctor
		for d, err := range seq {
			require.NoError(t, err)
			got = append(got, d)
		}
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0].DoctorID)
		assert.Equal(t, "Dr. Asha", got[0].Name)
		assert.True(t, got[0].Available)
		assert.False(t, got[1].Available)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorReadRepository_All_EarlyBreak(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReadRepository(db)

	mock.ExpectQuery("FROM doctors").WillReturnRows(doctorRows(uuid.New(), uuid.New()))

	count := 0
	for _, err := range repo.All(context.Background()) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorReadRepository_All_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReadRepository(db)

	mock.ExpectQuery("FROM doctors").WillReturnError(errors.New("db down"))

	var errs []error
	for _, err := range repo.All(context.Background()) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}
