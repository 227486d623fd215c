// Package router maps the HTTP surface onto the handlers. Paths are fixed
// by the public contract and unversioned: /users, /films, /genres, /mpa.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/filmorate/internal/handler"
)

// RegisterRoutes registers every route of the service on the provided Echo
// instance. /films/popular is registered before /films/:id so the static
// segment wins the match.
func RegisterRoutes(e *echo.Echo, users *handler.UserHandler, films *handler.FilmHandler, genres *handler.GenreHandler, ratings *handler.RatingHandler) {
	e.GET("/healthz", handler.Health)

	e.GET("/users", users.Get)
	e.POST("/users", users.Create)
	e.PUT("/users", users.Update)
	e.GET("/users/:id", users.GetByID)
	e.PUT("/users/:id/friends/:friendId", users.AddFriend)
	e.DELETE("/users/:id/friends/:friendId", users.DeleteFriend)
	e.GET("/users/:id/friends", users.GetFriends)
	e.GET("/users/:id/friends/common/:otherId", users.GetCommonFriends)

	e.GET("/films", films.Get)
	e.POST("/films", films.Create)
	e.PUT("/films", films.Update)
	e.GET("/films/popular", films.GetPopular)
	e.GET("/films/:id", films.GetByID)
	e.PUT("/films/:id/like/:userId", films.AddLike)
	e.DELETE("/films/:id/like/:userId", films.DeleteLike)

	e.GET("/genres", genres.FindAll)
	e.GET("/genres/:id", genres.FindByID)

	e.GET("/mpa", ratings.FindAll)
	e.GET("/mpa/:id", ratings.FindByID)
}
