package handlers

import (
	"errors"
	"net/http"

	"github.com/gobindacb/soul-share-server/internal/models"
	"github.com/gobindacb/soul-share-server/internal/repositories"
	"github.com/labstack/echo/v4"
)

// RequestHandler handles HTTP requests related to volunteer requests
type RequestHandler struct {
	requestRepository repositories.RequestRepository
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestRepo repositories.RequestRepository) *RequestHandler {
	return &RequestHandler{requestRepository: requestRepo}
}

// RegisterRequestRoutes registers request-related routes
func (h *RequestHandler) RegisterRequestRoutes(e *echo.Echo) {
	e.POST("/request", h.CreateRequest)
	e.GET("/my-request/:email", h.ListRequestsByRequester)
	e.GET("/volunteer-request/:email", h.ListRequestsByOrganizer)
	e.DELETE("/request/:id", h.DeleteRequest)
}

// CreateRequest stores a volunteer request. A duplicate submission for the
// same post is rejected with a plain-text 400.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var request models.VolunteerRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.requestRepository.Create(c.Request().Context(), &request)
	if errors.Is(err, repositories.ErrDuplicateRequest) {
		return c.String(http.StatusBadRequest, "You have already request for this volunteer post")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListRequestsByRequester returns the requests a volunteer has submitted.
func (h *RequestHandler) ListRequestsByRequester(c echo.Context) error {
	requests, err := h.requestRepository.ListByRequesterEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, requests)
}

// ListRequestsByOrganizer returns the requests made against an organizer's posts.
func (h *RequestHandler) ListRequestsByOrganizer(c echo.Context) error {
	requests, err := h.requestRepository.ListByOrganizerEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, requests)
}

// DeleteRequest removes a request and returns the deletion acknowledgement.
func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	result, err := h.requestRepository.DeleteByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repositories.ErrInvalidID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request id")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
