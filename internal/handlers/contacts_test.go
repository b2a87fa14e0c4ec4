package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"contactbook/internal/models"
	"contactbook/internal/repository"
	"contactbook/internal/service"
)

const validContactJSON = `{"firstName":"John","lastName":"Doe","phoneNumber":"123-456-7890"}`

var errDB = errors.New("db down")

// newContactsRouter wires a router whose auth middleware resolves every
// bearer token to the given user id.
func newContactsRouter(contacts *mockContacts, asUserID int) func(method, path, body string) *httptest.ResponseRecorder {
	s := &service.Service{
		Authorization: &mockAuth{parseID: asUserID},
		Contacts:      contacts,
	}
	r := newTestRouter(s)
	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
	return do
}

func TestCreateContact(t *testing.T) {
	t.Run("success returns 201 with stored contact", func(t *testing.T) {
		contacts := &mockContacts{
			createResp: models.Contact{ID: 5, UserID: 9, FirstName: "John", LastName: "Doe", PhoneNumber: "123-456-7890"},
		}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodPost, "/api/contacts", validContactJSON)
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}

		var got models.Contact
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.ID != 5 || got.UserID != 9 || got.FirstName != "John" {
			t.Fatalf("unexpected contact: %+v", got)
		}
		if contacts.lastUserID != 9 {
			t.Fatalf("owner must come from the token, got %d", contacts.lastUserID)
		}
	})

	t.Run("empty lastName rejected with 400 before the service", func(t *testing.T) {
		contacts := &mockContacts{}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodPost, "/api/contacts", `{"firstName":"John","lastName":"","phoneNumber":"123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
		}
		if contacts.createCalls != 0 {
			t.Fatalf("service must not be reached on invalid input")
		}
	})

	t.Run("store failure returns generic 500", func(t *testing.T) {
		contacts := &mockContacts{createErr: errDB}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodPost, "/api/contacts", validContactJSON)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var out struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != errInternal {
			t.Fatalf("internal detail leaked: %q", out.Error)
		}
	})
}

func TestListContacts(t *testing.T) {
	t.Run("returns owned contacts", func(t *testing.T) {
		contacts := &mockContacts{listResp: []models.Contact{
			{ID: 1, UserID: 9, FirstName: "John", LastName: "Doe", PhoneNumber: "1"},
			{ID: 2, UserID: 9, FirstName: "Jane", LastName: "Roe", PhoneNumber: "2"},
		}}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodGet, "/api/contacts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var got []models.Contact
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(got) != 2 || contacts.lastUserID != 9 {
			t.Fatalf("unexpected list: %+v (user %d)", got, contacts.lastUserID)
		}
	})

	t.Run("empty list serializes as JSON array", func(t *testing.T) {
		contacts := &mockContacts{listResp: []models.Contact{}}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodGet, "/api/contacts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("expected [], got %s", body)
		}
	})

	t.Run("missing header yields 401", func(t *testing.T) {
		s := &service.Service{Authorization: &mockAuth{}, Contacts: &mockContacts{}}
		r := newTestRouter(s)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestGetContact(t *testing.T) {
	t.Run("owned contact returned", func(t *testing.T) {
		contacts := &mockContacts{getResp: models.Contact{ID: 4, UserID: 9, FirstName: "John", LastName: "Doe", PhoneNumber: "1"}}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodGet, "/api/contacts/4", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if contacts.lastID != 4 || contacts.lastUserID != 9 {
			t.Fatalf("lookup used id=%d user=%d", contacts.lastID, contacts.lastUserID)
		}
	})

	t.Run("foreign or missing contact yields 404, never 403", func(t *testing.T) {
		contacts := &mockContacts{getErr: repository.ErrContactNotFound}
		do := newContactsRouter(contacts, 1)

		w := do(http.MethodGet, "/api/contacts/4", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d (body=%s)", w.Code, w.Body.String())
		}
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		contacts := &mockContacts{}
		do := newContactsRouter(contacts, 1)

		w := do(http.MethodGet, "/api/contacts/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestUpdateContact(t *testing.T) {
	t.Run("success echoes updated row", func(t *testing.T) {
		contacts := &mockContacts{
			updateResp: models.Contact{ID: 4, UserID: 9, FirstName: "John", LastName: "Doe", PhoneNumber: "123-456-7890"},
		}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodPut, "/api/contacts/4", validContactJSON)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if contacts.lastInput.LastName != "Doe" {
			t.Fatalf("unexpected input: %+v", contacts.lastInput)
		}

		// Same payload again yields the same row: the handler carries no
		// state between calls.
		w2 := do(http.MethodPut, "/api/contacts/4", validContactJSON)
		if w2.Code != http.StatusOK || w2.Body.String() != w.Body.String() {
			t.Fatalf("update not idempotent: %s vs %s", w.Body.String(), w2.Body.String())
		}
	})

	t.Run("not owned yields 404", func(t *testing.T) {
		contacts := &mockContacts{updateErr: repository.ErrContactNotFound}
		do := newContactsRouter(contacts, 1)

		w := do(http.MethodPut, "/api/contacts/4", validContactJSON)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing field yields 400 without service call", func(t *testing.T) {
		contacts := &mockContacts{}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodPut, "/api/contacts/4", `{"firstName":"John","phoneNumber":"1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if contacts.updateCalls != 0 {
			t.Fatalf("service must not be reached on invalid input")
		}
	})
}

func TestDeleteContact(t *testing.T) {
	t.Run("success acknowledged", func(t *testing.T) {
		contacts := &mockContacts{}
		do := newContactsRouter(contacts, 9)

		w := do(http.MethodDelete, "/api/contacts/4", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if contacts.lastID != 4 || contacts.lastUserID != 9 {
			t.Fatalf("delete used id=%d user=%d", contacts.lastID, contacts.lastUserID)
		}
	})

	t.Run("foreign or missing contact yields 404", func(t *testing.T) {
		contacts := &mockContacts{deleteErr: repository.ErrContactNotFound}
		do := newContactsRouter(contacts, 1)

		w := do(http.MethodDelete, "/api/contacts/4", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
