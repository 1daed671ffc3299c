package handlers

import (
	"errors"
	"net/http"

	"github.com/gobindacb/soul-share-server/internal/models"
	"github.com/gobindacb/soul-share-server/internal/repositories"
	"github.com/gobindacb/soul-share-server/internal/token"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// upcomingNeedsLimit caps the "volunteer needs now" section on the home page.
const upcomingNeedsLimit = 6

// PostHandler handles HTTP requests related to volunteer posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo) {
	e.GET("/needs", h.ListUpcomingNeeds)
	e.GET("/posts", h.ListPosts)
	e.GET("/post/:id", h.GetPost)
	e.POST("/post", h.CreatePost)
	e.GET("/posts/:email", h.ListPostsByOrganizer)
	e.DELETE("/post/:id", h.DeletePost)
	e.PUT("/post/:id", h.UpsertPost)
}

// ListUpcomingNeeds returns at most six posts ordered by nearest deadline.
func (h *PostHandler) ListUpcomingNeeds(c echo.Context) error {
	if cookie, err := c.Cookie(token.CookieName); err == nil {
		log.Debug().Str("token", cookie.Value).Msg("got token cookie")
	}

	posts, err := h.postRepository.ListUpcoming(c.Request().Context(), upcomingNeedsLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// ListPosts returns every volunteer post.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postRepository.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post for the details page. An unknown id gives a
// null body, not a 404.
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repositories.ErrInvalidID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post id")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// CreatePost stores a new volunteer post and returns the insert acknowledgement.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var post models.Post
	if err := c.Bind(&post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.postRepository.Create(c.Request().Context(), &post)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListPostsByOrganizer returns the posts published by the given organizer email.
func (h *PostHandler) ListPostsByOrganizer(c echo.Context) error {
	posts, err := h.postRepository.ListByOrganizerEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// DeletePost removes a post and returns the deletion acknowledgement.
func (h *PostHandler) DeletePost(c echo.Context) error {
	result, err := h.postRepository.DeleteByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repositories.ErrInvalidID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post id")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// UpsertPost writes the posted fields onto a post, inserting when the id is
// unknown. The body is kept as a raw field map so only the keys the client
// sent reach the store.
func (h *PostHandler) UpsertPost(c echo.Context) error {
	var fields bson.M
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.postRepository.UpsertByID(c.Request().Context(), c.Param("id"), fields)
	if errors.Is(err, repositories.ErrInvalidID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post id")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
