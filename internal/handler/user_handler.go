package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/filmorate/internal/model"
	"github.com/iliyamo/filmorate/internal/service"
)

// UserHandler serves the /users routes: CRUD plus the friendship graph.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /users.
func (h *UserHandler) Get(c echo.Context) error {
	users, err := h.users.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if users == nil {
		users = []*model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /users.
func (h *UserHandler) Create(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	created, err := h.users.Create(c.Request().Context(), &u)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /users. The body must carry the id of an existing
// user; the stored record is fully replaced.
func (h *UserHandler) Update(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	updated, err := h.users.Update(c.Request().Context(), &u)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	u, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// AddFriend handles PUT /users/:id/friends/:friendId and returns the
// initiator's refreshed friend list.
func (h *UserHandler) AddFriend(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	friendID, err := parseID(c, "friendId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid friend id"})
	}
	friends, err := h.users.AddFriend(c.Request().Context(), id, friendID)
	if err != nil {
		return writeError(c, err)
	}
	if friends == nil {
		friends = []*model.User{}
	}
	return c.JSON(http.StatusOK, friends)
}

// DeleteFriend handles DELETE /users/:id/friends/:friendId.
func (h *UserHandler) DeleteFriend(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	friendID, err := parseID(c, "friendId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid friend id"})
	}
	if err := h.users.DeleteFriend(c.Request().Context(), id, friendID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetFriends handles GET /users/:id/friends.
func (h *UserHandler) GetFriends(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	friends, err := h.users.GetFriends(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if friends == nil {
		friends = []*model.User{}
	}
	return c.JSON(http.StatusOK, friends)
}

// GetCommonFriends handles GET /users/:id/friends/common/:otherId.
func (h *UserHandler) GetCommonFriends(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	otherID, err := parseID(c, "otherId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid other id"})
	}
	friends, err := h.users.GetCommonFriends(c.Request().Context(), id, otherID)
	if err != nil {
		return writeError(c, err)
	}
	if friends == nil {
		friends = []*model.User{}
	}
	return c.JSON(http.StatusOK, friends)
}
