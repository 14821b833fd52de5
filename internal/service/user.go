// File: internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"userhub/internal/database"
	"userhub/internal/fault"
	"userhub/internal/model"
	"userhub/internal/store"
)

// AccessTokenTTL bounds every token issued by registration and update.
const AccessTokenTTL = 24 * time.Hour

// Field length bounds, shared by registration and update.
const (
	passwordMinLen = 6
	passwordMaxLen = 30
	usernameMinLen = 4
	usernameMaxLen = 20
)

// Indirections for tests.
var (
	getUserByID      = store.GetUserByID
	getUserByEmail   = store.GetUserByEmail
	listUsers        = store.ListUsers
	createUser       = store.CreateUser
	updateUser       = store.UpdateUser
	deleteUser       = store.DeleteUser
	hashPassword     = HashPassword
	issueAccessToken = IssueAccessToken
)

// UserPatch is a partial profile update. Empty fields leave the stored
// value untouched; there is no way to clear a field through a patch.
// IsAdmin is not here on purpose: it is never accepted from a request.
type UserPatch struct {
	Name     string
	Image    string
	Username string
	Email    string
	Password string
}

func validatePassword(password string) error {
	if l := len(password); l < passwordMinLen || l > passwordMaxLen {
		return fmt.Errorf("password length: %w", fault.ErrValidationFailed)
	}
	return nil
}

func validateUsername(username string) error {
	if l := len(username); l < usernameMinLen || l > usernameMaxLen {
		return fmt.Errorf("username length: %w", fault.ErrValidationFailed)
	}
	return nil
}

// RegisterUser creates an account and returns the stored record plus a
// fresh access token. The email pre-check is best effort; a concurrent
// registration loses at the unique index and still comes back as
// DuplicateEmail.
func RegisterUser(ctx context.Context, db database.DB, email, username, password string) (*model.User, string, error) {
	email = strings.ToLower(email)

	if _, err := getUserByEmail(ctx, db, email); err == nil {
		return nil, "", fmt.Errorf("RegisterUser: %w", fault.ErrDuplicateEmail)
	} else if !errors.Is(err, fault.ErrNotFound) {
		return nil, "", err
	}

	if err := validatePassword(password); err != nil {
		return nil, "", err
	}
	if username != "" {
		if err := validateUsername(username); err != nil {
			return nil, "", err
		}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("RegisterUser: %w", err)
	}

	created, err := createUser(ctx, db, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, fault.ErrConstraintViolation) {
			return nil, "", fmt.Errorf("RegisterUser: %w", fault.ErrDuplicateEmail)
		}
		return nil, "", err
	}

	// Re-read by the generated id. Not an optimization: an insert that
	// cannot be read back signals store inconsistency.
	user, err := getUserByID(ctx, db, created.ID)
	if err != nil {
		if errors.Is(err, fault.ErrNotFound) {
			return nil, "", fmt.Errorf("RegisterUser: %w", fault.ErrInvalidState)
		}
		return nil, "", err
	}

	token, err := issueAccessToken(user.ID, AccessTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("RegisterUser: %w", err)
	}

	redacted := user.Redacted()
	return &redacted, token, nil
}

// GetUser returns a single redacted record.
func GetUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	user, err := getUserByID(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	redacted := user.Redacted()
	return &redacted, nil
}

// ListUsers returns every record, redacted.
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	users, err := listUsers(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Redacted()
	}
	return users, nil
}

// UpdateUser merges a patch into the acting user's own record and
// reissues a token for the same id. The target id comes from the
// verified identity, never from request input.
func UpdateUser(ctx context.Context, db database.DB, actingUserID int, patch UserPatch) (*model.User, string, error) {
	user, err := getUserByID(ctx, db, actingUserID)
	if err != nil {
		return nil, "", err
	}

	if patch.Username != "" {
		if err := validateUsername(patch.Username); err != nil {
			return nil, "", err
		}
		user.Username = patch.Username
	}
	if patch.Password != "" {
		if err := validatePassword(patch.Password); err != nil {
			return nil, "", err
		}
		hash, err := hashPassword(patch.Password)
		if err != nil {
			return nil, "", fmt.Errorf("UpdateUser: %w", err)
		}
		user.PasswordHash = hash
	}
	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Image != "" {
		user.Image = patch.Image
	}
	if patch.Email != "" {
		user.Email = strings.ToLower(patch.Email)
	}

	if err := updateUser(ctx, db, user); err != nil {
		if errors.Is(err, fault.ErrConstraintViolation) {
			return nil, "", fmt.Errorf("UpdateUser: %w", fault.ErrDuplicateEmail)
		}
		return nil, "", err
	}

	token, err := issueAccessToken(user.ID, AccessTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("UpdateUser: %w", err)
	}

	redacted := user.Redacted()
	return &redacted, token, nil
}

// DeleteUser removes a record. Deleting an id that is already gone is
// NotFound, so a second delete observes the same failure as the first.
func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	return deleteUser(ctx, db, userID)
}
