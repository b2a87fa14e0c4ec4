package repository

import (
	"context"
	"database/sql"
	"errors"

	"contactbook/internal/models"
	"contactbook/internal/repository/db"
)

// Sentinel errors surfaced to the service layer. Handlers map them to
// HTTP statuses with errors.Is.
var (
	// ErrUsernameTaken reports a UNIQUE constraint violation on users.username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrContactNotFound covers both a missing row and a row owned by
	// another user; callers must not be able to tell the two apart.
	ErrContactNotFound = errors.New("contact not found")
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Contacts is the ownership-filtered CRUD surface over the contacts
// table. Every method takes the authenticated user's id and folds it
// into the WHERE clause.
type Contacts interface {
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	ListByUser(ctx context.Context, userID int) ([]models.Contact, error)
	GetOne(ctx context.Context, userID, id int) (models.Contact, error)
	Update(ctx context.Context, userID, id int, c models.Contact) (models.Contact, error)
	Delete(ctx context.Context, userID, id int) error
}

type Repository struct {
	Auth     Authorization
	Contacts Contacts
}

func NewRepository(sqldb *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(sqldb),
		Contacts: NewContactRepository(sqldb),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
