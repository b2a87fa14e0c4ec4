package models

// User is a registered account. The bcrypt digest is excluded from
// JSON so it never leaves the server.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
