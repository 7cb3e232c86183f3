package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kofiasare/ghanalingo/internal/events"
	"github.com/kofiasare/ghanalingo/internal/hash"
	"github.com/kofiasare/ghanalingo/internal/logging"
	"github.com/kofiasare/ghanalingo/internal/models"
	"github.com/kofiasare/ghanalingo/internal/repo"
	"github.com/kofiasare/ghanalingo/internal/session"
	"github.com/kofiasare/ghanalingo/internal/tokens"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailExists        = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid token")
)

// usernameAttempts bounds the random-suffix retry loop when a generated
// username is already taken.
const usernameAttempts = 5

type AuthService struct {
	Users     *repo.UserRepo
	Sessions  *session.Store
	Producer  *events.Producer
	JWTSecret []byte
	TokenTTL  time.Duration
}

// AuthResult is what a successful register or login hands back: the public
// profile, the signed bearer token and the signed session cookie value.
// Token and session are redundant on purpose, either one authenticates.
type AuthResult struct {
	User    models.Profile
	Token   string
	Session string
}

func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		l.Error("register_error", "reason", "email lookup failed", "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: pwHash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	for attempt := 0; ; attempt++ {
		user.Username = generateUsername(firstName, lastName)
		err = s.Users.Create(ctx, user)
		if err == nil {
			break
		}
		if errors.Is(err, repo.ErrUsernameTaken) && attempt < usernameAttempts {
			continue
		}
		if errors.Is(err, repo.ErrEmailTaken) {
			// a concurrent registration won the race, same answer as the
			// pre-check
			return nil, ErrEmailExists
		}
		l.Error("register_error", "reason", "insert failed", "error", err)
		return nil, err
	}

	s.publish(ctx, user, "user_registered")
	l.Info("register_successful", "user_id", user.ID, "username", user.Username)

	return s.issueCredentials(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_error", "reason", "email lookup failed", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	s.publish(ctx, user, "user_logged_in")
	l.Info("login_successful", "user_id", user.ID)

	return s.issueCredentials(user)
}

// CurrentUser resolves a request to a live user row. The session takes
// precedence; the bearer token is the fallback when no session resolves.
func (s *AuthService) CurrentUser(ctx context.Context, sessionCookie, tokenStr string) (*models.User, error) {
	if sessionCookie != "" {
		if data, ok := s.Sessions.Get(sessionCookie); ok {
			if user, err := s.Users.GetByID(ctx, data.UserID); err == nil {
				return user, nil
			}
		}
	}

	if tokenStr == "" {
		return nil, ErrNotAuthenticated
	}

	claims, err := tokens.ClaimsFromToken(tokenStr, s.JWTSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func (s *AuthService) Logout(sessionCookie string) {
	if sessionCookie != "" {
		s.Sessions.Destroy(sessionCookie)
	}
}

func (s *AuthService) issueCredentials(user *models.User) (*AuthResult, error) {
	token, err := tokens.Sign(user.ID, user.Username, user.FirstName, user.LastName, s.JWTSecret, s.ttl())
	if err != nil {
		return nil, err
	}

	sid := s.Sessions.Create(session.Data{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})

	return &AuthResult{
		User:    user.Profile(),
		Token:   token,
		Session: sid,
	}, nil
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return tokens.TTL
}

func (s *AuthService) publish(ctx context.Context, user *models.User, eventType string) {
	event := map[string]any{
		"type":     eventType,
		"userId":   user.ID,
		"username": user.Username,
	}
	if err := s.Producer.PublishEvent(ctx, fmt.Sprint(user.ID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}

// generateUsername concatenates the normalized names with a random 4-digit
// suffix. Uniqueness is not guaranteed here, Register retries on collision.
func generateUsername(firstName, lastName string) string {
	base := strings.ToLower(firstName + lastName)
	base = strings.Join(strings.Fields(base), "")
	return fmt.Sprintf("%s%d", base, 1000+rand.Intn(9000))
}
