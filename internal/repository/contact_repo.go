package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contactbook/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ Contacts = (*ContactRepository)(nil)

// Every SELECT/UPDATE/DELETE filters on id AND user_id so that a row
// owned by another user scans as sql.ErrNoRows / zero rows affected.
const (
	insertContactSQL = `INSERT INTO contacts (user_id, first_name, last_name, phone_number) VALUES (?, ?, ?, ?)`

	selectContactsByUserSQL = `SELECT id, user_id, first_name, last_name, phone_number FROM contacts WHERE user_id = ?`

	selectContactSQL = `SELECT id, user_id, first_name, last_name, phone_number FROM contacts WHERE id = ? AND user_id = ?`

	updateContactSQL = `UPDATE contacts SET first_name = ?, last_name = ?, phone_number = ? WHERE id = ? AND user_id = ?`

	deleteContactSQL = `DELETE FROM contacts WHERE id = ? AND user_id = ?`
)

// Create inserts a contact for c.UserID and returns it with the
// generated id filled in.
func (r *ContactRepository) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	res, err := r.db.ExecContext(ctx, insertContactSQL, c.UserID, c.FirstName, c.LastName, c.PhoneNumber)
	if err != nil {
		return models.Contact{}, fmt.Errorf("insert contact for user %d: %w", c.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Contact{}, fmt.Errorf("get last insert id for contact: %w", err)
	}
	c.ID = int(lastID)
	return c, nil
}

// ListByUser returns all contacts owned by userID, empty slice if none.
func (r *ContactRepository) ListByUser(ctx context.Context, userID int) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, selectContactsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select contacts for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.PhoneNumber); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}
	return contacts, nil
}

// GetOne fetches a single contact owned by userID.
func (r *ContactRepository) GetOne(ctx context.Context, userID, id int) (models.Contact, error) {
	var c models.Contact
	err := r.db.QueryRowContext(ctx, selectContactSQL, id, userID).
		Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.PhoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		return models.Contact{}, fmt.Errorf("select contact %d for user %d: %w", id, userID, err)
	}
	return c, nil
}

// Update rewrites the mutable fields of a contact owned by userID and
// returns the resulting row. Zero rows affected means the contact does
// not exist or belongs to someone else; both are ErrContactNotFound.
func (r *ContactRepository) Update(ctx context.Context, userID, id int, c models.Contact) (models.Contact, error) {
	res, err := r.db.ExecContext(ctx, updateContactSQL, c.FirstName, c.LastName, c.PhoneNumber, id, userID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact %d for user %d: %w", id, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Contact{}, fmt.Errorf("rows affected for contact %d: %w", id, err)
	}
	if affected == 0 {
		return models.Contact{}, ErrContactNotFound
	}
	c.ID = id
	c.UserID = userID
	return c, nil
}

// Delete removes a contact owned by userID.
func (r *ContactRepository) Delete(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, deleteContactSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete contact %d for user %d: %w", id, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for contact %d: %w", id, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}
