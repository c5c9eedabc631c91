package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boutiklabs/boutik/app/services"
	"github.com/boutiklabs/boutik/pkg/auth"
)

func newDirectory() *services.AccountDirectory {
	return services.NewAccountDirectory(auth.NewIssuer("test-secret", time.Hour))
}

func TestRegisterRequiresAllFields(t *testing.T) {
	d := newDirectory()

	for _, tc := range []struct {
		name                                  string
		username, firstname, email, password string
	}{
		{"no username", "", "f", "e@x.com", "p"},
		{"no firstname", "u", "", "e@x.com", "p"},
		{"no email", "u", "f", "", "p"},
		{"no password", "u", "f", "e@x.com", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := d.Register(tc.username, tc.firstname, tc.email, tc.password)
			assert.ErrorIs(t, err, services.ErrMissingFields)
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	d := newDirectory()

	require.NoError(t, d.Register("u", "f", "e@x.com", "p"))

	err := d.Register("other", "person", "e@x.com", "different")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	d := newDirectory()

	_, err := d.Authenticate("ghost@x.com", "p")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	d := newDirectory()
	require.NoError(t, d.Register("u", "f", "e@x.com", "secret"))

	_, err := d.Authenticate("e@x.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthenticateIssuesVerifiableToken(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	d := services.NewAccountDirectory(issuer)
	require.NoError(t, d.Register("u", "f", "e@x.com", "secret"))

	token, err := d.Authenticate("e@x.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "e@x.com", claims.Email)
}
