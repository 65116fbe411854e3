// Package response provides standardized HTTP response builders for the
// airline inventory API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health writes a health check response.
func Health(c echo.Context, version string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Version: version,
	})
}
