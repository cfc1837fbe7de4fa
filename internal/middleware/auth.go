package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-housekeeping/internal/config"
	"github.com/iliyamo/hotel-housekeeping/internal/utils"
)

// Realm is sent in WWW-Authenticate on every 401 from the perimeter.
const Realm = `Basic realm="Secure Area"`

// Authenticator guards the worksheet creation routes with the single staff
// credential pair from config. Clients send either Basic credentials or a
// Bearer token previously issued by IssueToken.
type Authenticator struct {
	user         string
	passwordHash string
	secret       string
	ttlMin       int
}

// NewAuthenticator builds an Authenticator. When only a plain password is
// configured it is hashed once here so requests are always checked against
// a bcrypt hash.
func NewAuthenticator(cfg config.AuthConfig) (*Authenticator, error) {
	if cfg.User == "" {
		return nil, errors.New("auth: empty user")
	}
	hash := cfg.PasswordHash
	if hash == "" {
		if cfg.Password == "" {
			return nil, errors.New("auth: no password configured")
		}
		h, err := utils.HashPassword(cfg.Password, cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &Authenticator{user: cfg.User, passwordHash: hash, secret: cfg.JWTSecret, ttlMin: cfg.AccessTTLMin}, nil
}

// CheckBasic reports whether user and pass match the configured pair.
func (a *Authenticator) CheckBasic(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.user)) == 1
	passOK := utils.VerifyPassword(a.passwordHash, pass)
	return userOK && passOK
}

// IssueToken signs an access token for the staff user.
func (a *Authenticator) IssueToken() (utils.AccessToken, error) {
	return utils.NewAccessToken(a.secret, a.user, a.ttlMin)
}

// Middleware rejects requests without valid credentials with 401 and the
// Basic challenge. On success the staff user is stored under StaffKey.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := a.authenticate(c.Request())
			if !ok {
				return Unauthorized(c)
			}
			c.Set(StaffKey, user)
			return next(c)
		}
	}
}

func (a *Authenticator) authenticate(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if raw, ok := strings.CutPrefix(auth, "Bearer "); ok {
		sub, err := utils.ParseAccessToken(a.secret, strings.TrimSpace(raw))
		if err != nil || sub != a.user {
			return "", false
		}
		return sub, true
	}
	user, pass, ok := r.BasicAuth()
	if !ok || !a.CheckBasic(user, pass) {
		return "", false
	}
	return user, true
}

// Unauthorized writes the perimeter's 401 response.
func Unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, Realm)
	return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "unauthorized"})
}
