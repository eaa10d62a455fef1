// Package handler contains the HTTP handlers of the service: auth,
// landlord property management, the visit approval workflow and the
// tenant-facing visit endpoints.
package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user id from the echo context
// and converts it to uint64.  JWT numeric claims arrive as float64
// after JSON parsing; string and integer forms are accepted for
// robustness.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
