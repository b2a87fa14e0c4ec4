package handlers

import (
	"context"
	"net/http"

	"contactbook/internal/models"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockContacts struct {
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

	lastUserID int
	lastID     int
	lastInput  service.ContactInput
}

func (m *mockContacts) Create(ctx context.Context, userID int, input service.ContactInput) (models.Contact, error) {
	m.createCalls++
	m.lastUserID = userID
	m.lastInput = input
	return m.createResp, m.createErr
}
func (m *mockContacts) List(ctx context.Context, userID int) ([]models.Contact, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}
func (m *mockContacts) GetOne(ctx context.Context, userID, id int) (models.Contact, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.getResp, m.getErr
}
func (m *mockContacts) Update(ctx context.Context, userID, id int, input service.ContactInput) (models.Contact, error) {
	m.updateCalls++
	m.lastUserID = userID
	m.lastID = id
	m.lastInput = input
	return m.updateResp, m.updateErr
}
func (m *mockContacts) Delete(ctx context.Context, userID, id int) error {
	m.lastUserID = userID
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
