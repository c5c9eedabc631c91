package models

// User is an account holder. Email is the natural key. Password holds the
// bcrypt hash — the plain text never leaves the registration handler.
type User struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
	Password  string `json:"-"`
}
