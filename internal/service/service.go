package service

import (
	"context"

	"contactbook/internal/models"
	"contactbook/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Contacts exposes the per-user phone-book operations. The userID
// argument always comes from a verified token, never from the request
// body.
type Contacts interface {
	Create(ctx context.Context, userID int, input ContactInput) (models.Contact, error)
	List(ctx context.Context, userID int) ([]models.Contact, error)
	GetOne(ctx context.Context, userID, id int) (models.Contact, error)
	Update(ctx context.Context, userID, id int, input ContactInput) (models.Contact, error)
	Delete(ctx context.Context, userID, id int) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Contacts
}

// NewService wires the repository layer into concrete services. The
// JWT signing key comes from configuration and is threaded through
// explicitly; nothing below main reads config ambiently.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, signingKey),
		Contacts:      NewContactService(repos.Contacts),
	}
}
