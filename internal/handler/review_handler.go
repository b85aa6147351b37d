package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReviewHandler serves user reviews. Persistence is not built yet;
// listing returns an empty collection.
type ReviewHandler struct{}

// NewReviewHandler creates a new review handler.
func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{}
}

// Review mirrors the review shape the frontend renders.
type Review struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	UserName  string `json:"user_name"`
	PlaceID   int    `json:"place_id"`
	PlaceName string `json:"place_name"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Status    string `json:"status"` // pending, approved, rejected
}

// List godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param place_id query int false "Filter by place"
// @Success 200 {array} Review
// @Router /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, []Review{})
}

// Create godoc
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Failure 501 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	return notImplemented(c)
}

// Delete godoc
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	return notImplemented(c)
}

// Report godoc
// @Summary Report a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /reviews/{id}/report [post]
func (h *ReviewHandler) Report(c echo.Context) error {
	return notImplemented(c)
}
