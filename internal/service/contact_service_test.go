package service

import (
	"context"
	"errors"
	"testing"

	"contactbook/internal/models"
	"contactbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockContactRepo records calls so tests can assert the repository is
// never reached on invalid input.
type mockContactRepo struct {
	createResp models.Contact
	createErr  error
	listResp   []models.Contact
	listErr    error
	getResp    models.Contact
	getErr     error
	updateResp models.Contact
	updateErr  error
	deleteErr  error

	createCalls int
	updateCalls int
	lastUserID  int
	lastID      int
	lastContact models.Contact
}

func (m *mockContactRepo) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	m.createCalls++
	m.lastContact = c
	return m.createResp, m.createErr
}
func (m *mockContactRepo) ListByUser(ctx context.Context, userID int) ([]models.Contact, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}
func (m *mockContactRepo) GetOne(ctx context.Context, userID, id int) (models.Contact, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.getResp, m.getErr
}
func (m *mockContactRepo) Update(ctx context.Context, userID, id int, c models.Contact) (models.Contact, error) {
	m.updateCalls++
	m.lastUserID = userID
	m.lastID = id
	m.lastContact = c
	return m.updateResp, m.updateErr
}
func (m *mockContactRepo) Delete(ctx context.Context, userID, id int) error {
	m.lastUserID = userID
	m.lastID = id
	return m.deleteErr
}

var validInput = ContactInput{FirstName: "John", LastName: "Doe", PhoneNumber: "123-456-7890"}

func TestContactService_Create_SetsOwnerFromCaller(t *testing.T) {
	repo := &mockContactRepo{
		createResp: models.Contact{ID: 3, UserID: 9, FirstName: "John", LastName: "Doe", PhoneNumber: "123-456-7890"},
	}
	svc := NewContactService(repo)

	got, err := svc.Create(context.Background(), 9, validInput)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ID)
	assert.Equal(t, 9, repo.lastContact.UserID, "owner must come from the authenticated caller")
	assert.Equal(t, "John", repo.lastContact.FirstName)
}

func TestContactService_Create_RejectsMissingFieldsBeforeRepo(t *testing.T) {
	cases := []struct {
		name  string
		input ContactInput
		field string
	}{
		{"empty first name", ContactInput{FirstName: "", LastName: "Doe", PhoneNumber: "1"}, "firstName"},
		{"blank last name", ContactInput{FirstName: "John", LastName: "   ", PhoneNumber: "1"}, "lastName"},
		{"empty phone", ContactInput{FirstName: "John", LastName: "Doe", PhoneNumber: ""}, "phoneNumber"},
		{"all empty", ContactInput{}, "firstName"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockContactRepo{}
			svc := NewContactService(repo)

			_, err := svc.Create(context.Background(), 1, tc.input)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.field)
			assert.Zero(t, repo.createCalls, "repository must not be reached on invalid input")
		})
	}
}

func TestContactService_Update_ValidatesThenDelegates(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo)

	_, err := svc.Update(context.Background(), 1, 5, ContactInput{FirstName: "J"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, repo.updateCalls)

	repo.updateResp = models.Contact{ID: 5, UserID: 1, FirstName: "John", LastName: "Doe", PhoneNumber: "123-456-7890"}
	got, err := svc.Update(context.Background(), 1, 5, validInput)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastID)
	assert.Equal(t, 1, repo.lastUserID)
	assert.Equal(t, repo.updateResp, got)
}

func TestContactService_Update_PropagatesNotFound(t *testing.T) {
	repo := &mockContactRepo{updateErr: repository.ErrContactNotFound}
	svc := NewContactService(repo)

	_, err := svc.Update(context.Background(), 1, 404, validInput)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestContactService_ListAndGetAndDelete_PassThrough(t *testing.T) {
	repo := &mockContactRepo{
		listResp:  []models.Contact{{ID: 1, UserID: 2}},
		getResp:   models.Contact{ID: 1, UserID: 2},
		deleteErr: errors.New("boom"),
	}
	svc := NewContactService(repo)

	list, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 2, repo.lastUserID)

	got, err := svc.GetOne(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	err = svc.Delete(context.Background(), 2, 1)
	assert.EqualError(t, err, "boom")
}
