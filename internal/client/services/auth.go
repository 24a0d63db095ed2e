// Package services contains the application workflows sitting between the
// CLI and the resource clients: authentication/session management and the
// event workflows, including participant registration.
package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mjacquet/eventdesk/internal/client/api"
	"github.com/mjacquet/eventdesk/internal/client/models"
	"github.com/mjacquet/eventdesk/internal/client/session"
	"github.com/mjacquet/eventdesk/internal/common"
	"github.com/mjacquet/eventdesk/internal/logging"
)

// tokenSecret signs the locally synthesized session token. The secret is a
// fixed in-code string, so the signature carries no security property: the
// token is a logged-in marker for a backend that performs no verification.
const tokenSecret = "eventdesk-secret"

const tokenValidity = 24 * time.Hour

// tokenClaims is the payload of the synthesized token: subject id, email,
// and an expiry 24 hours out. No expiry check is ever performed client-side.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// AuthService turns credentials into a session.
type AuthService struct {
	users api.Users
	store *session.Store
	log   logging.Logger
	now   func() time.Time
}

func NewAuthService(users api.Users, store *session.Store, log logging.Logger) *AuthService {
	return &AuthService{users: users, store: store, log: log, now: time.Now}
}

// Register posts a new identity record and establishes a session for it.
// Backend failures are logged with their cause and surfaced as the generic
// common.ErrRegistrationFailed.
func (s *AuthService) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	user := models.User{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
		Role:      "user",
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.log.Error(ctx, "registration failed", "email", data.Email, "error", err)
		return nil, common.ErrRegistrationFailed
	}

	if err := s.establishSession(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Login looks the identity up by email (a filtered list read; the store has
// no server-side auth) and compares the submitted password against the
// stored value in plaintext. No session is written on any failure path.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	matches, err := s.users.List(ctx, url.Values{"email": {creds.Email}})
	if err != nil {
		s.log.Error(ctx, "login lookup failed", "email", creds.Email, "error", err)
		return nil, err
	}
	if len(matches) == 0 {
		return nil, common.ErrEmailNotFound
	}

	user := matches[0]
	if user.Password != creds.Password {
		return nil, common.ErrIncorrectPassword
	}

	user.NormalizeName()

	if err := s.establishSession(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the session unconditionally; it never fails. Storage errors
// are logged and swallowed so observers still converge on logged-out.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.store.ClearSession(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session", "error", err)
	}
}

// IsAuthenticated checks token presence only, never validity or expiry.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	token, err := s.store.Token(ctx)
	return err == nil && token != ""
}

// CurrentUser returns the stored user, re-read and re-normalized.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.store.CurrentUser(ctx)
}

// UpdateProfile overwrites the whole identity record and republishes the
// session user. The token is left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("cannot update profile: %w", common.ErrNotFound)
	}

	updated, err := s.users.Replace(ctx, user.ID, user)
	if err != nil {
		s.log.Error(ctx, "profile update failed", "user_id", user.ID, "error", err)
		return nil, err
	}
	if err := s.store.UpdateCurrentUser(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *AuthService) establishSession(ctx context.Context, user *models.User) error {
	token, err := s.generateToken(user)
	if err != nil {
		s.log.Error(ctx, "token synthesis failed", "error", err)
		return err
	}
	if err := s.store.SetSession(ctx, user, token); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// generateToken synthesizes the three-segment session token locally; in a
// real deployment this is the backend's job.
func (s *AuthService) generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenValidity)),
		},
		Email: user.Email,
	})
	return token.SignedString([]byte(tokenSecret))
}
