package middleware

import "github.com/labstack/echo/v4"

// StaffKey is the echo context key under which the perimeter stores the
// authenticated staff user name.
const StaffKey = "staff"

// staffID returns the authenticated staff user, or "anon" when the request
// did not pass the perimeter.
func staffID(c echo.Context) string {
	if v, ok := c.Get(StaffKey).(string); ok && v != "" {
		return v
	}
	return "anon"
}
