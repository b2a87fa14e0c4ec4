package models

// Contact is a phone-book entry owned by a single user. Ownership is
// enforced in the repository: every query carries UserID in its WHERE
// clause, so a foreign contact is indistinguishable from a missing one.
type Contact struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}
