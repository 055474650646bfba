// Package session keeps the signed-in admin in a signed, HttpOnly cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"modernband/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "admin_session"

var (
	ErrNoSession = errors.New("no admin session")
	ErrExpired   = errors.New("admin session expired")
	ErrInvalid   = errors.New("invalid admin session")
)

// Store is what handlers depend on; JWTStore is the production implementation.
type Store interface {
	Get(r *http.Request) (models.Admin, error)
	Set(w http.ResponseWriter, admin models.Admin) error
	Clear(w http.ResponseWriter)
}

type JWTStore struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
	Now    func() time.Time
}

type claims struct {
	Admin models.Admin `json:"admin"`
	jwt.RegisteredClaims
}

func NewJWTStore(secret string, ttl time.Duration, secure bool) *JWTStore {
	return &JWTStore{Secret: []byte(secret), TTL: ttl, Secure: secure}
}

func (s *JWTStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *JWTStore) ttl() time.Duration {
	if s.TTL <= 0 {
		return 12 * time.Hour
	}
	return s.TTL
}

func (s *JWTStore) Get(r *http.Request) (models.Admin, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return models.Admin{}, ErrNoSession
	}

	c := &claims{}
	_, err = jwt.ParseWithClaims(cookie.Value, c, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Admin{}, ErrExpired
		}
		return models.Admin{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !c.Admin.IsAdmin || c.Admin.Username == "" {
		return models.Admin{}, ErrInvalid
	}
	return c.Admin, nil
}

func (s *JWTStore) Set(w http.ResponseWriter, admin models.Admin) error {
	now := s.now()
	exp := now.Add(s.ttl())
	c := claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.Secret)
	if err != nil {
		return fmt.Errorf("sign admin session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *JWTStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
