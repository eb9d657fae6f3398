package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/endoclin/admin/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAuthProvider(t *testing.T) {
	p, err := NewLocalAuthProvider("admin", "s3cret", "static-key", internal.NopLogger())
	require.NoError(t, err)

	res, err := p.Login(context.Background(), Credentials{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "static-key", res.Token)

	_, err = p.Login(context.Background(), Credentials{Username: "admin", Password: "wrong"})
	var loginErr *LoginError
	require.True(t, errors.As(err, &loginErr))
	assert.Equal(t, 401, loginErr.Status)

	_, err = p.Login(context.Background(), Credentials{Username: "root", Password: "s3cret"})
	assert.Error(t, err)

	assert.NoError(t, p.Logout(context.Background(), "static-key"))
}

func TestLocalAuthProvider_RandomTokenWithoutKey(t *testing.T) {
	p, err := NewLocalAuthProvider("admin", "pw", "", internal.NopLogger())
	require.NoError(t, err)

	a, err := p.Login(context.Background(), Credentials{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	b, err := p.Login(context.Background(), Credentials{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.Token)
	assert.NotEqual(t, a.Token, b.Token)
}
