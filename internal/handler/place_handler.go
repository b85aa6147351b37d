package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PlaceHandler serves the places catalog. Storage and filtering are not
// built yet; listing returns an empty catalog.
type PlaceHandler struct{}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler() *PlaceHandler {
	return &PlaceHandler{}
}

// Place mirrors the catalog card shape the frontend renders.
type Place struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviewsCount"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags,omitempty"`
}

// List godoc
// @Summary List places
// @Tags places
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Search term"
// @Success 200 {array} Place
// @Router /places [get]
func (h *PlaceHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, []Place{})
}

// Get godoc
// @Summary Get place by id
// @Tags places
// @Produce json
// @Param id path int true "Place ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /places/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	return notImplemented(c)
}

// Create godoc
// @Summary Create place
// @Tags places
// @Accept json
// @Produce json
// @Failure 501 {object} errors.ErrorResponse
// @Router /places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	return notImplemented(c)
}

// Update godoc
// @Summary Update place
// @Tags places
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /places/{id} [put]
func (h *PlaceHandler) Update(c echo.Context) error {
	return notImplemented(c)
}

// Delete godoc
// @Summary Delete place
// @Tags places
// @Produce json
// @Param id path int true "Place ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /places/{id} [delete]
func (h *PlaceHandler) Delete(c echo.Context) error {
	return notImplemented(c)
}
