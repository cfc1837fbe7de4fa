package handler

import (
	"net/http" // net/http provides status codes

	"github.com/labstack/echo/v4" // echo request context
	"github.com/sirupsen/logrus"  // logrus receives handler logs

	"github.com/iliyamo/hotel-housekeeping/internal/middleware" // middleware owns the staff credential
)

// AuthHandler exposes the staff credential check and token exchange.
type AuthHandler struct {
	auth *middleware.Authenticator
	log  logrus.FieldLogger
}

// NewAuthHandler builds the auth endpoints around the perimeter authenticator.
func NewAuthHandler(auth *middleware.Authenticator, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Token handles POST /auth/token: Basic credentials in, access token out.
func (h *AuthHandler) Token(c echo.Context) error {
	user, pass, hasBasic := c.Request().BasicAuth()
	if !hasBasic || !h.auth.CheckBasic(user, pass) {
		return middleware.Unauthorized(c)
	}
	tok, err := h.auth.IssueToken()
	if err != nil {
		h.log.WithError(err).Error("issue access token failed")
		return fail(c, http.StatusInternalServerError, "issue token failed")
	}
	return ok(c, http.StatusOK, tok)
}

// Check handles GET /auth-check. The perimeter has already run, so reaching
// the handler means the credentials are valid.
func (h *AuthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    echo.Map{"user": c.Get(middleware.StaffKey)},
		Message: "authenticated",
	})
}
