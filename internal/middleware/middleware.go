// Package middleware carries the per-request auth pipeline: bearer
// extraction, token verification, subject resolution against the
// store, and the admin gate on top.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"userhub/internal/cache"
	"userhub/internal/database"
	"userhub/internal/fault"
	"userhub/internal/model"
	"userhub/internal/service"
	"userhub/internal/store"
	"userhub/internal/worker"

	"github.com/labstack/echo/v4"
)

// ContextUserKey holds the acting user (*model.User, hash redacted).
const ContextUserKey = "user"

const lastSeenTTL = 24 * time.Hour

// Indirections for tests.
var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByID       = store.GetUserByID
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fault.ErrMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, fault.ErrMissingToken
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrInvalidToken, err)
	}
	return claims, nil
}

func reject(err error) error {
	return echo.NewHTTPError(fault.Status(err), fault.Public(err))
}

// RequireAuth verifies the bearer token and resolves the acting user
// from the store, so a token for a deleted account never gets through.
// The resolved identity, hash redacted, is attached to the context.
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return reject(err)
			}
			user, err := getUserByID(c.Request().Context(), db, claims.UserID)
			if err != nil {
				if errors.Is(err, fault.ErrNotFound) {
					return reject(fault.ErrUnknownSubject)
				}
				return reject(err)
			}
			redacted := user.Redacted()
			c.Set(ContextUserKey, &redacted)
			return next(c)
		}
	}
}

// RequireAdmin gates on the is_admin flag of the store-resolved record.
// Client input never reaches this decision.
func RequireAdmin(db database.DB) echo.MiddlewareFunc {
	auth := RequireAuth(db)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			if !user.IsAdmin {
				return reject(fault.ErrInsufficientPrivilege)
			}
			return next(c)
		})
	}
}

// ActingUser returns the identity RequireAuth attached to the context.
func ActingUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	if !ok || user.ID == 0 {
		return nil, fault.ErrMissingToken
	}
	return user, nil
}

// TrackActivity records a last-seen timestamp for the acting user off
// the request path. Failures are invisible to the request.
func TrackActivity(wp worker.Pool, store cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, ok := c.Get(ContextUserKey).(*model.User); ok {
				userID := user.ID
				wp.Submit(func() {
					key := fmt.Sprintf("users:last_seen:%d", userID)
					store.Set(context.Background(), key, time.Now().UTC().Format(time.RFC3339), lastSeenTTL)
				})
			}
			return next(c)
		}
	}
}
