package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/kofiasare/ghanalingo/internal/db"
	"github.com/kofiasare/ghanalingo/internal/models"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserRepo struct {
	Store db.Store
}

const userColumns = "id, username, email, password_hash, first_name, last_name, created_at, updated_at"

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, err := r.Store.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return userFromRow(rows[0]), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	rows, err := r.Store.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return userFromRow(rows[0]), nil
}

// Create inserts the user and fills in the generated id. Duplicate email or
// username surfaces as a typed error so handlers can answer with a clean
// conflict instead of a bare engine message.
func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	res, err := r.Store.Execute(ctx,
		"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES ($1, $2, $3, $4, $5)",
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName)
	if err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			if strings.Contains(err.Error(), "username") {
				return ErrUsernameTaken
			}
			return ErrEmailTaken
		}
		return err
	}
	u.ID = res.LastInsertID
	return nil
}

func userFromRow(row db.Row) *models.User {
	return &models.User{
		ID:           db.Int64(row, "id"),
		Username:     db.String(row, "username"),
		Email:        db.String(row, "email"),
		PasswordHash: db.String(row, "password_hash"),
		FirstName:    db.String(row, "first_name"),
		LastName:     db.String(row, "last_name"),
		CreatedAt:    db.Time(row, "created_at"),
		UpdatedAt:    db.Time(row, "updated_at"),
	}
}
