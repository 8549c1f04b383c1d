package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// DaysResponse lists calendar-annotated days.
type DaysResponse struct {
	From string            `json:"from"`
	To   string            `json:"to"`
	Days []domain.DayEntry `json:"days"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Flights writes a 200 OK response with the flat normalized flight list.
func Flights(c echo.Context, resp *domain.NormalizedFlightsResponse) error {
	return OK(c, resp)
}

// Groups writes a 200 OK response with flights grouped by destination.
func Groups(c echo.Context, resp *domain.GroupsResponse) error {
	return OK(c, resp)
}

// Day writes a 200 OK response for a single calendar day.
func Day(c echo.Context, entry domain.DayEntry) error {
	return OK(c, entry)
}

// Days writes a 200 OK response for a calendar range.
func Days(c echo.Context, from, to string, days []domain.DayEntry) error {
	if days == nil {
		days = []domain.DayEntry{}
	}
	return OK(c, &DaysResponse{From: from, To: to, Days: days})
}
