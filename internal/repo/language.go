package repo

import (
	"context"

	"github.com/kofiasare/ghanalingo/internal/db"
	"github.com/kofiasare/ghanalingo/internal/models"
)

type LanguageRepo struct {
	Store db.Store
}

func (r *LanguageRepo) List(ctx context.Context) ([]models.Language, error) {
	rows, err := r.Store.Query(ctx,
		"SELECT id, name, code, description, created_at FROM languages ORDER BY id")
	if err != nil {
		return nil, err
	}

	langs := make([]models.Language, 0, len(rows))
	for _, row := range rows {
		langs = append(langs, models.Language{
			ID:          db.Int64(row, "id"),
			Name:        db.String(row, "name"),
			Code:        db.String(row, "code"),
			Description: db.String(row, "description"),
			CreatedAt:   db.Time(row, "created_at"),
		})
	}
	return langs, nil
}
