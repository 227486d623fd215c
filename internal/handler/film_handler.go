package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/filmorate/internal/model"
	"github.com/iliyamo/filmorate/internal/service"
)

// defaultPopularCount is the number of films GET /films/popular returns
// when no count query parameter is given.
const defaultPopularCount = 10

// FilmHandler serves the /films routes: CRUD, likes and the popularity
// ranking.
type FilmHandler struct {
	films *service.FilmService
}

func NewFilmHandler(films *service.FilmService) *FilmHandler {
	return &FilmHandler{films: films}
}

// Get handles GET /films.
func (h *FilmHandler) Get(c echo.Context) error {
	films, err := h.films.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if films == nil {
		films = []*model.Film{}
	}
	return c.JSON(http.StatusOK, films)
}

// Create handles POST /films.
func (h *FilmHandler) Create(c echo.Context) error {
	var f model.Film
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	created, err := h.films.Create(c.Request().Context(), &f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /films.
func (h *FilmHandler) Update(c echo.Context) error {
	var f model.Film
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	updated, err := h.films.Update(c.Request().Context(), &f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// GetByID handles GET /films/:id.
func (h *FilmHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	f, err := h.films.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// AddLike handles PUT /films/:id/like/:userId.
func (h *FilmHandler) AddLike(c echo.Context) error {
	filmID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if err := h.films.AddLike(c.Request().Context(), filmID, userID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteLike handles DELETE /films/:id/like/:userId.
func (h *FilmHandler) DeleteLike(c echo.Context) error {
	filmID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if err := h.films.DeleteLike(c.Request().Context(), filmID, userID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPopular handles GET /films/popular?count=N. A non-numeric count is a
// client error; a non-positive count yields an empty list.
func (h *FilmHandler) GetPopular(c echo.Context) error {
	count := defaultPopularCount
	if raw := c.QueryParam("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid count"})
		}
		count = n
	}
	films, err := h.films.GetPopular(c.Request().Context(), count)
	if err != nil {
		return writeError(c, err)
	}
	if films == nil {
		films = []*model.Film{}
	}
	return c.JSON(http.StatusOK, films)
}
