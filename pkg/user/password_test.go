package user

import (
	"Matrafl-Backend/domain"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	h := NewPasswordHasher()
	ctx := context.Background()

	for _, password := range []string{"correct horse battery staple", "", "ünïcødé"} {
		encoded, err := h.HashPassword(ctx, password)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=19456,t=2,p=1$"))
		assert.NoError(t, h.VerifyPassword(ctx, password, encoded))
	}
}

func TestPasswordMismatch(t *testing.T) {
	h := NewPasswordHasher()
	ctx := context.Background()

	encoded, err := h.HashPassword(ctx, "hunter22")
	require.NoError(t, err)

	err = h.VerifyPassword(ctx, "hunter23", encoded)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	assert.ErrorIs(t, err, domain.ErrCredential)
}

func TestHashesUseFreshSalt(t *testing.T) {
	h := NewPasswordHasher()
	ctx := context.Background()

	a, err := h.HashPassword(ctx, "same")
	require.NoError(t, err)
	b, err := h.HashPassword(ctx, "same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestMalformedHash(t *testing.T) {
	h := NewPasswordHasher()
	ctx := context.Background()

	valid, err := h.HashPassword(ctx, "pw")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")
	withParams := func(params string) string {
		return strings.Join([]string{"", parts[1], parts[2], params, parts[4], parts[5]}, "$")
	}

	cases := map[string]string{
		"empty":         "",
		"plaintext":     "pw",
		"wrong alg":     strings.Replace(valid, "argon2id", "argon2i", 1),
		"wrong version": strings.Replace(valid, "v=19", "v=16", 1),
		"bad params":    strings.Join([]string{"", parts[1], parts[2], "m=x", parts[4], parts[5]}, "$"),
		"bad salt":      strings.Join([]string{"", parts[1], parts[2], parts[3], "!!", parts[5]}, "$"),
		"missing hash":  strings.Join(parts[:5], "$"),
		"huge time":     withParams("m=19456,t=4000000000,p=1"),
		"huge memory":   withParams("m=4294967295,t=2,p=1"),
		"many threads":  withParams("m=19456,t=2,p=255"),
		"zero time":     withParams("m=19456,t=0,p=1"),
		"trailing junk": withParams("m=19456,t=2,p=1junk"),
		"extra field":   withParams("m=19456,t=2,p=1,x=3"),
		"version junk":  strings.Replace(valid, "v=19", "v=19junk", 1),
		"short key":     strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], "AAAA"}, "$"),
	}

	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, h.VerifyPassword(ctx, "pw", encoded), domain.ErrMalformedHash)
		})
	}
}
