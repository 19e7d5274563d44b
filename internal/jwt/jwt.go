package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PasswordResetPurpose is the audience every password-reset token is bound to.
// A token signed for any other purpose fails verification.
const PasswordResetPurpose = "email-confirm"

var (
	// ErrTokenExpired is returned when the token verified but is older than the allowed age.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for every other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the payload of a signed email token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWT issues and verifies stateless HS256 email tokens.
// Nothing is persisted: the issue time travels inside the token and expiry is checked against it.
type JWT struct {
	SecretKey string           // Secret key for signing tokens
	Purpose   string           // Audience the tokens are bound to
	now       func() time.Time // Clock, replaceable in tests
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithPurpose binds tokens to a different audience.
func WithPurpose(purpose string) Option {
	return func(j *JWT) { j.Purpose = purpose }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

// New creates a JWT for password-reset tokens.
func New(opts ...Option) *JWT {
	j := &JWT{
		Purpose: PasswordResetPurpose,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Issue signs a token carrying email and the current time.
func (j *JWT) Issue(ctx context.Context, email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: jwt.ClaimStrings{j.Purpose},
			IssuedAt: jwt.NewNumericDate(j.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Redeem verifies tokenString and returns the embedded email.
// It fails with ErrTokenExpired when more than maxAge has passed since issuance and with
// ErrTokenInvalid on a bad signature, wrong purpose, or malformed token.
// Redeeming has no side effects; a token stays usable for its whole window.
func (j *JWT) Redeem(ctx context.Context, tokenString string, maxAge time.Duration) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(j.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(j.Purpose),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", errors.Join(ErrTokenInvalid, err)
	}

	if claims.IssuedAt == nil || claims.Email == "" {
		return "", ErrTokenInvalid
	}

	// iat has whole-second precision
	if j.now().Truncate(time.Second).Sub(claims.IssuedAt.Time) > maxAge {
		return "", ErrTokenExpired
	}

	return claims.Email, nil
}
