package handlers

import (
	"net/http"

	"github.com/gobindacb/soul-share-server/internal/token"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles credential issuance. Note that nothing else in this
// surface verifies the issued cookie; enforcement lives with the frontend's
// own API guards.
type AuthHandler struct {
	issuer *token.Issuer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(issuer *token.Issuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// RegisterAuthRoutes registers the token issuance route
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/jwt", h.IssueToken)
}

// IssueToken signs the posted identity payload and delivers it as the
// HTTP-only token cookie.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var identity map[string]any
	if err := c.Bind(&identity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	signed, err := h.issuer.Issue(identity)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.SetCookie(h.issuer.Cookie(signed))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
