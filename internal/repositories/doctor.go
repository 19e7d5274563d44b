package repositories

import (
	"context"
	"iter"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

type DoctorReadRepository struct {
	db *sqlx.DB
}

func NewDoctorReadRepository(db *sqlx.DB) *DoctorReadRepository {
	return &DoctorReadRepository{db: db}
}

// All streams every doctor. Each range over the returned sequence issues a fresh query,
// so the sequence can be consumed more than once.
func (r *DoctorReadRepository) All(ctx context.Context) iter.Seq2[models.Doctor, error] {
	const query = `
		SELECT doctor_id, name, specialization, location, available
		FROM doctors
		ORDER BY name
	`

	return func(yield func(models.Doctor, error) bool) {
		rows, err := r.db.QueryxContext(ctx, query)

		logger.Log.Infow(
			"query", oneLine(query),
			"error", err,
		)

		if err != nil {
			yield(models.Doctor{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var d models.Doctor
			if err := rows.StructScan(&d); err != nil {
				yield(models.Doctor{}, err)
				return
			}
			if !yield(d, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.Doctor{}, err)
		}
	}
}
