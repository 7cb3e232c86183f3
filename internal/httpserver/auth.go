package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kofiasare/ghanalingo/internal/logging"
	"github.com/kofiasare/ghanalingo/internal/service"
)

const (
	SessionCookieName = "sid"
	TokenCookieName   = "token"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func CreateCookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(maxAge),
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func DeleteCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return errJSON(c, http.StatusBadRequest, "All fields are required")
	}

	res, err := h.Svc.Register(ctx, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return errJSON(c, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrEmailExists):
			return errJSON(c, http.StatusBadRequest, "User already exists with this email")
		default:
			l.Error("register_failed", "status", 500, "error", err)
			return errJSON(c, http.StatusInternalServerError, "Registration failed")
		}
	}

	h.setAuthCookies(c, res)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Registration successful",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return errJSON(c, http.StatusBadRequest, "Email and password are required")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return errJSON(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			// one message for unknown email and wrong password, the client
			// cannot tell which accounts exist
			return errJSON(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			l.Error("login_failed", "status", 500, "error", err)
			return errJSON(c, http.StatusInternalServerError, "Login failed")
		}
	}

	h.setAuthCookies(c, res)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.Svc.CurrentUser(ctx, cookieValue(c, SessionCookieName), bearerToken(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return errJSON(c, http.StatusUnauthorized, "Invalid token")
		}
		return errJSON(c, http.StatusUnauthorized, "Not authenticated")
	}

	return c.JSON(http.StatusOK, user.Profile())
}

func (h *AuthHTTP) LogOut(c echo.Context) error {
	h.Svc.Logout(cookieValue(c, SessionCookieName))

	c.SetCookie(DeleteCookie(SessionCookieName))
	c.SetCookie(DeleteCookie(TokenCookieName))

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Logged out successfully",
	})
}

func (h *AuthHTTP) setAuthCookies(c echo.Context, res *service.AuthResult) {
	ttl := h.Svc.Sessions.TTL()
	c.SetCookie(CreateCookie(SessionCookieName, res.Session, ttl))
	c.SetCookie(CreateCookie(TokenCookieName, res.Token, ttl))
}

func cookieValue(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// bearerToken pulls the JWT from the token cookie or, failing that, an
// Authorization: Bearer header.
func bearerToken(c echo.Context) string {
	if v := cookieValue(c, TokenCookieName); v != "" {
		return v
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if _, token, ok := strings.Cut(auth, " "); ok {
		return token
	}
	return ""
}
