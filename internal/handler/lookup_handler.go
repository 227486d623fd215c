package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/filmorate/internal/service"
)

// GenreHandler serves the read-only /genres routes.
type GenreHandler struct {
	genres *service.GenreService
}

func NewGenreHandler(genres *service.GenreService) *GenreHandler {
	return &GenreHandler{genres: genres}
}

// FindAll handles GET /genres.
func (h *GenreHandler) FindAll(c echo.Context) error {
	genres, err := h.genres.FindAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, genres)
}

// FindByID handles GET /genres/:id.
func (h *GenreHandler) FindByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	g, err := h.genres.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// RatingHandler serves the read-only /mpa routes.
type RatingHandler struct {
	ratings *service.RatingService
}

func NewRatingHandler(ratings *service.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// FindAll handles GET /mpa.
func (h *RatingHandler) FindAll(c echo.Context) error {
	ratings, err := h.ratings.FindAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ratings)
}

// FindByID handles GET /mpa/:id.
func (h *RatingHandler) FindByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	r, err := h.ratings.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}
