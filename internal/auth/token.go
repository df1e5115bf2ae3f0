package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when the token signature checks out but
	// its expiry is not strictly in the future.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers everything else: bad signature, malformed
	// input, wrong algorithm, unparseable subject.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Issuer signs and verifies bearer tokens with a shared HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed token whose subject is the decimal user id and
// whose expiry is now + ttl.
func (i *Issuer) Issue(userId int, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userId),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks the signature and expiry of a token and returns the user id
// it was issued for. Malformed input is an ErrTokenInvalid, never a panic.
func (i *Issuer) Verify(tokenString string, now time.Time) (int, error) {
	clean := sanitizeToken(tokenString)

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(clean, &claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return 0, ErrTokenExpired
	}
	if err != nil || !token.Valid {
		return 0, ErrTokenInvalid
	}

	// The library allows exp == now through leeway rounding; the contract
	// here is strict: a token is live only while expiry > now.
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return 0, ErrTokenExpired
	}

	userId, err := strconv.Atoi(claims.Subject)
	if err != nil || userId <= 0 {
		return 0, ErrTokenInvalid
	}
	return userId, nil
}

// TTL reports the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
}
