package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the single-page site
func LandingHandler(c echo.Context) error {
	return renderLanding(c, http.StatusOK, nil)
}
