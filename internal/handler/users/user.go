// Package users holds the HTTP handlers for the /api/users routes.
// They bind and validate the request, call the service layer, and hand
// failures to the one fault translator.
package users

import (
	"net/http"
	"strconv"

	"userhub/internal/api"
	"userhub/internal/database"
	"userhub/internal/fault"
	"userhub/internal/middleware"
	"userhub/internal/service"

	"github.com/labstack/echo/v4"
)

// Indirections for tests.
var (
	registerUser = service.RegisterUser
	getUser      = service.GetUser
	listUsers    = service.ListUsers
	updateUser   = service.UpdateUser
	deleteUser   = service.DeleteUser
)

// httpError renders any error kind through the fault mapping.
func httpError(c echo.Context, err error) error {
	return c.JSON(fault.Status(err), api.ErrorResponse{Message: fault.Public(err)})
}

// RegisterUserHandler creates a new account.
// @Summary     Register a new user
// @Description Creates an account from email, optional username and password, and returns the record with a fresh access token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterUserRequest true "registration data"
// @Success     201 {object} api.AuthUserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func RegisterUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := registerUser(c.Request().Context(), db, req.Email, req.Username, req.Password)
		if err != nil {
			return httpError(c, err)
		}

		return c.JSON(http.StatusCreated, api.AuthUserResponse{
			UserResponse: api.NewUserResponse(user),
			Token:        token,
		})
	}
}

// ListUsersHandler returns every account, redacted. Admin only.
// @Summary     List all users
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return httpError(c, err)
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler returns one account by id. Admin only.
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "user ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUser(c.Request().Context(), db, id)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateUserHandler merges a patch into the acting user's own record.
// The route binds :id, but the record is always resolved from the
// authenticated identity; a path id naming someone else is rejected.
// @Summary     Update own profile
// @Description Non-empty fields replace the stored values; empty fields are left untouched. A new token is issued.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "user ID (must be the acting user's own)"
// @Param       body body api.UpdateUserRequest true "profile patch"
// @Success     200 {object} api.AuthUserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		acting, err := middleware.ActingUser(c)
		if err != nil {
			return httpError(c, err)
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if id != acting.ID {
			return httpError(c, fault.ErrInsufficientPrivilege)
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := updateUser(c.Request().Context(), db, acting.ID, service.UserPatch{
			Name:     req.Name,
			Image:    req.Image,
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return httpError(c, err)
		}

		return c.JSON(http.StatusOK, api.AuthUserResponse{
			UserResponse: api.NewUserResponse(user),
			Token:        token,
		})
	}
}

// DeleteUserHandler removes an account by id. Admin only.
// @Summary     Delete a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "user ID"
// @Success     200 {object} api.DeleteUserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, api.DeleteUserResponse{Removed: true})
	}
}
