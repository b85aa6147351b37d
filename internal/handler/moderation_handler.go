package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ModerationHandler serves the moderation dashboard. The moderation
// workflow is not built yet; stats report empty queues, listings return
// empty collections inside their envelopes, and actions are not
// implemented.
type ModerationHandler struct{}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler() *ModerationHandler {
	return &ModerationHandler{}
}

// ModerationStats summarizes the moderation workload.
type ModerationStats struct {
	PendingReviews int `json:"pending_reviews"`
	ReportsCount   int `json:"reports_count"`
}

// ModerationReview mirrors the review shape the moderation queue renders.
type ModerationReview struct {
	ID     int    `json:"id"`
	User   string `json:"user"`
	Place  string `json:"place"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// ReportView mirrors the report shape the moderation dashboard renders.
type ReportView struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Reporter string `json:"reporter"`
	Date     string `json:"date"`
}

// ModerationUser mirrors the user list entry the moderation dashboard renders.
type ModerationUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// QueueResponse is the moderation queue envelope.
type QueueResponse struct {
	Success bool               `json:"success"`
	Reviews []ModerationReview `json:"reviews"`
	Error   string             `json:"error,omitempty"`
}

// ReportsResponse is the reports listing envelope.
type ReportsResponse struct {
	Success bool         `json:"success"`
	Reports []ReportView `json:"reports"`
	Error   string       `json:"error,omitempty"`
}

// ModerationUsersResponse is the user listing envelope.
type ModerationUsersResponse struct {
	Success bool             `json:"success"`
	Users   []ModerationUser `json:"users"`
	Error   string           `json:"error,omitempty"`
}

// Stats godoc
// @Summary Moderation statistics
// @Tags moderation
// @Produce json
// @Success 200 {object} ModerationStats
// @Router /moderation/stats [get]
func (h *ModerationHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, ModerationStats{})
}

// Queue godoc
// @Summary Reviews pending moderation
// @Tags moderation
// @Produce json
// @Failure 501 {object} QueueResponse
// @Router /moderation/queue [get]
func (h *ModerationHandler) Queue(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, QueueResponse{
		Reviews: []ModerationReview{},
		Error:   "not implemented",
	})
}

// ModerateReview godoc
// @Summary Approve or reject a review
// @Tags moderation
// @Produce json
// @Param id path int true "Review ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /moderation/{id} [put]
func (h *ModerationHandler) ModerateReview(c echo.Context) error {
	return notImplemented(c)
}

// Reports godoc
// @Summary List reports
// @Tags moderation
// @Produce json
// @Failure 501 {object} ReportsResponse
// @Router /moderation/reports [get]
func (h *ModerationHandler) Reports(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, ReportsResponse{
		Reports: []ReportView{},
		Error:   "not implemented",
	})
}

// HandleReport godoc
// @Summary Handle a report
// @Tags moderation
// @Produce json
// @Param id path int true "Report ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /moderation/reports/{id} [put]
func (h *ModerationHandler) HandleReport(c echo.Context) error {
	return notImplemented(c)
}

// Users godoc
// @Summary List users for moderation
// @Tags moderation
// @Produce json
// @Failure 501 {object} ModerationUsersResponse
// @Router /moderation/users [get]
func (h *ModerationHandler) Users(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, ModerationUsersResponse{
		Users: []ModerationUser{},
		Error: "not implemented",
	})
}

// ChangeUserRole godoc
// @Summary Change a user's role
// @Tags moderation
// @Produce json
// @Param id path int true "User ID"
// @Failure 501 {object} errors.ErrorResponse
// @Router /moderation/users/{id}/role [put]
func (h *ModerationHandler) ChangeUserRole(c echo.Context) error {
	return notImplemented(c)
}
