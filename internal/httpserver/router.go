package httpserver

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	LanguageHandler *LanguageHTTP
	StaticDir       string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")
	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)
	api.GET("/user", d.AuthHandler.Me)
	api.POST("/logout", d.AuthHandler.LogOut)
	api.GET("/languages", d.LanguageHandler.List)

	if d.StaticDir != "" {
		for path, file := range map[string]string{
			"/":          "index.html",
			"/login":     "login.html",
			"/register":  "register.html",
			"/dashboard": "dashboard.html",
		} {
			name := filepath.Join(d.StaticDir, file)
			e.GET(path, func(c echo.Context) error { return c.File(name) })
		}
		e.Static("/", d.StaticDir)
	}
}
