package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-housekeeping/internal/config"
	"github.com/iliyamo/hotel-housekeeping/internal/utils"
)

func newAuth(t *testing.T) *Authenticator {
	t.Helper()
	a, err := NewAuthenticator(config.AuthConfig{
		User:         "admin",
		Password:     "pass",
		JWTSecret:    "secret",
		AccessTTLMin: 10,
		BcryptCost:   4,
	})
	require.NoError(t, err)
	return a
}

func protected(a *Authenticator) *echo.Echo {
	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		return c.String(http.StatusOK, staffID(c))
	}, a.Middleware())
	return e
}

func TestAuthenticator_Basic(t *testing.T) {
	e := protected(newAuth(t))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.SetBasicAuth("admin", "pass")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())

	for _, creds := range [][2]string{{"admin", "wrong"}, {"root", "pass"}} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.SetBasicAuth(creds[0], creds[1])
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, Realm, rec.Header().Get(echo.HeaderWWWAuthenticate))
	}
}

func TestAuthenticator_MissingCredentials(t *testing.T) {
	e := protected(newAuth(t))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"unauthorized"}`, rec.Body.String())
}

func TestAuthenticator_Bearer(t *testing.T) {
	a := newAuth(t)
	e := protected(a)
	tok, err := a.IssueToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	other, err := utils.NewAccessToken("secret", "intruder", 10)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+other.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewAuthenticator_UsesConfiguredHash(t *testing.T) {
	hash, err := utils.HashPassword("hashed-pass", 4)
	require.NoError(t, err)
	a, err := NewAuthenticator(config.AuthConfig{User: "admin", PasswordHash: hash, Password: "ignored"})
	require.NoError(t, err)
	assert.True(t, a.CheckBasic("admin", "hashed-pass"))
	assert.False(t, a.CheckBasic("admin", "ignored"))

	_, err = NewAuthenticator(config.AuthConfig{User: "admin"})
	assert.Error(t, err)
}

func TestRequestLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])
	assert.Equal(t, "/ok", hook.LastEntry().Data["path"])

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestNewTokenBucket_DisabledPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil, logrus.New()))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/cleanings", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/cleanings")

	cfg := config.RateLimitConfig{Prefix: "rl"}
	assert.Equal(t, "rl:ip:10.0.0.7:user:anon:route:POST /api/cleanings", buildRateKey(cfg, c))

	c.Set(StaffKey, "admin")
	cfg.KeyStrategy = "user"
	assert.Equal(t, "rl:user:admin", buildRateKey(cfg, c))
	cfg.KeyStrategy = "IP"
	assert.Equal(t, "rl:ip:10.0.0.7", buildRateKey(cfg, c))
}

func TestParseBucketResult(t *testing.T) {
	allowed, remaining, retry, ok := parseBucketResult([]any{int64(1), int64(4), int64(0)})
	require.True(t, ok)
	assert.True(t, allowed)
	assert.Equal(t, int64(4), remaining)
	assert.Zero(t, retry)

	allowed, _, retry, ok = parseBucketResult([]any{"0", "0", "750"})
	require.True(t, ok)
	assert.False(t, allowed)
	assert.Equal(t, int64(750), retry)

	_, _, _, ok = parseBucketResult("nope")
	assert.False(t, ok)
}
