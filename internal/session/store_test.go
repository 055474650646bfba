package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"modernband/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWith(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestSetThenGet(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s := &JWTStore{Secret: []byte("k"), TTL: time.Hour, Now: func() time.Time { return now }}

	w := httptest.NewRecorder()
	require.NoError(t, s.Set(w, models.Admin{Username: "owner", IsAdmin: true, Token: "t1"}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, CookieName, cookies[0].Name)

	admin, err := s.Get(requestWith(cookies))
	require.NoError(t, err)
	assert.Equal(t, "owner", admin.Username)
	assert.Equal(t, "t1", admin.BearerToken())
}

func TestGetWithoutCookie(t *testing.T) {
	s := NewJWTStore("k", time.Hour, false)
	_, err := s.Get(requestWith(nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestExpiredSession(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s := &JWTStore{Secret: []byte("k"), TTL: time.Hour, Now: func() time.Time { return now }}
	w := httptest.NewRecorder()
	require.NoError(t, s.Set(w, models.Admin{Username: "owner", IsAdmin: true}))

	now = now.Add(2 * time.Hour)
	_, err := s.Get(requestWith(w.Result().Cookies()))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestTamperedOrForeignSession(t *testing.T) {
	a := NewJWTStore("secret-a", time.Hour, false)
	b := NewJWTStore("secret-b", time.Hour, false)

	w := httptest.NewRecorder()
	require.NoError(t, a.Set(w, models.Admin{Username: "owner", IsAdmin: true}))
	_, err := b.Get(requestWith(w.Result().Cookies()))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = a.Get(requestWith([]*http.Cookie{{Name: CookieName, Value: "garbage"}}))
	assert.ErrorIs(t, err, ErrInvalid)

	w = httptest.NewRecorder()
	require.NoError(t, a.Set(w, models.Admin{Username: "clerk", IsAdmin: false}))
	_, err = a.Get(requestWith(w.Result().Cookies()))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestClear(t *testing.T) {
	s := NewJWTStore("k", time.Hour, true)
	w := httptest.NewRecorder()
	s.Clear(w)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
	assert.True(t, cookies[0].Secure)
}
