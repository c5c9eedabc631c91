package services

import (
	"sync"

	"github.com/boutiklabs/boutik/app/models"
	"github.com/boutiklabs/boutik/pkg/auth"
)

// AccountDirectory is the in-memory user registry. Accounts live for the
// process lifetime only; there is no update or delete path.
type AccountDirectory struct {
	issuer *auth.Issuer

	mu    sync.RWMutex
	users map[string]models.User // keyed by email
}

func NewAccountDirectory(issuer *auth.Issuer) *AccountDirectory {
	return &AccountDirectory{
		issuer: issuer,
		users:  make(map[string]models.User),
	}
}

// Register creates an account. All four fields are mandatory. The
// password is bcrypt-hashed before it reaches the map, so no code path
// ever stores or logs the plain text. A second registration with the
// same email is rejected with ErrEmailTaken.
func (d *AccountDirectory) Register(username, firstname, email, password string) error {
	if username == "" || firstname == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.users[email]; exists {
		return ErrEmailTaken
	}

	d.users[email] = models.User{
		Username:  username,
		Firstname: firstname,
		Email:     email,
		Password:  hash,
	}
	return nil
}

// Authenticate verifies the credentials and returns a signed bearer
// token. Unknown email is ErrNotFound; a wrong password is
// ErrInvalidCredentials.
func (d *AccountDirectory) Authenticate(email, password string) (string, error) {
	d.mu.RLock()
	user, ok := d.users[email]
	d.mu.RUnlock()

	if !ok {
		return "", ErrNotFound
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return d.issuer.Issue(user.Email)
}
