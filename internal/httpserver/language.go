package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kofiasare/ghanalingo/internal/logging"
	"github.com/kofiasare/ghanalingo/internal/repo"
)

type LanguageHTTP struct {
	Repo *repo.LanguageRepo
}

func (h *LanguageHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	langs, err := h.Repo.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("languages_failed", "status", 500, "error", err)
		return errJSON(c, http.StatusInternalServerError, "Could not load languages")
	}

	return c.JSON(http.StatusOK, langs)
}
