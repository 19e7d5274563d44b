package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

const userColumns = `user_id, email, username, password_hash, age, address, phone_number,
	state, country, profile_picture, created_at, updated_at`

// profileColumns lists the columns UpdateFields may set.
var profileColumns = map[string]struct{}{
	"age":             {},
	"address":         {},
	"phone_number":    {},
	"state":           {},
	"country":         {},
	"profile_picture": {},
}

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return r.getBy(ctx, "user_id", userID)
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getBy(ctx, "email", email)
}

// GetByUsername returns the user with the given username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.getBy(ctx, "username", username)
}

// getBy runs an exact-match lookup. column is always one of the constants above.
func (r *UserReadRepository) getBy(ctx context.Context, column string, value any) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1 LIMIT 1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, value)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{value},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. Unique violations on email or username come back
// as models.ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`
	now := time.Now().UTC()
	args := []any{user.UserID, user.Email, user.Username, user.PasswordHash, now}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{user.UserID, user.Email, user.Username},
		"error", err,
	)

	if err != nil {
		return mapUniqueViolation(err)
	}
	user.CreatedAt, user.UpdatedAt = now, now
	return nil
}

// UpdatePassword overwrites the password hash of the user with the given email.
// Updating an unknown email is not an error.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE email = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, passwordHash, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateFields sets the given profile columns; columns not in fields are left untouched.
// A nil value stores NULL.
func (r *UserWriteRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		if _, ok := profileColumns[col]; !ok {
			return fmt.Errorf("column %q cannot be updated", col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	sets := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	for i, col := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
