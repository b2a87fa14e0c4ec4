package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contactbook/internal/models"
	"contactbook/internal/repository"
)

// ErrValidation marks a client-fixable input problem (missing contact
// fields). Handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// ContactInput carries the client-supplied contact fields. The owner
// is never part of the input.
type ContactInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// ContactService applies field validation and delegates to the
// ownership-filtered repository.
type ContactService struct {
	repo repository.Contacts
}

func NewContactService(repo repository.Contacts) *ContactService {
	return &ContactService{repo: repo}
}

var _ Contacts = (*ContactService)(nil)

// validate rejects empty or whitespace-only fields before any store
// round trip.
func (s *ContactService) validate(in ContactInput) error {
	var missing []string
	if strings.TrimSpace(in.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(in.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func (s *ContactService) Create(ctx context.Context, userID int, input ContactInput) (models.Contact, error) {
	if err := s.validate(input); err != nil {
		return models.Contact{}, err
	}
	return s.repo.Create(ctx, models.Contact{
		UserID:      userID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
	})
}

func (s *ContactService) List(ctx context.Context, userID int) ([]models.Contact, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ContactService) GetOne(ctx context.Context, userID, id int) (models.Contact, error) {
	return s.repo.GetOne(ctx, userID, id)
}

func (s *ContactService) Update(ctx context.Context, userID, id int, input ContactInput) (models.Contact, error) {
	if err := s.validate(input); err != nil {
		return models.Contact{}, err
	}
	return s.repo.Update(ctx, userID, id, models.Contact{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
	})
}

func (s *ContactService) Delete(ctx context.Context, userID, id int) error {
	return s.repo.Delete(ctx, userID, id)
}
