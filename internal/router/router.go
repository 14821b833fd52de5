// File: internal/router/router.go
package router

import (
	"userhub/internal/cache"
	"userhub/internal/database"
	"userhub/internal/handler"
	"userhub/internal/handler/users"
	"userhub/internal/middleware"
	"userhub/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup registers every route. Registration is the only public
// operation; everything else sits behind the auth middleware, and the
// user CRUD additionally behind the admin gate.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth(db))

	api.POST("/users", users.RegisterUserHandler(db))

	apiUsers := api.Group("/users", middleware.RequireAdmin(db), middleware.TrackActivity(wp, rdb))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))
}
