//go:build unit

package client_test

import (
	"testing"

	"hotel-booking-engine/internal/domain/client"
	"hotel-booking-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(client.Client{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.ClientBuilder)
	errIs  error
}

func TestClient(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := client.NewName("Alice Smith")
		email, _ := client.NewEmail("alice@example.com")
		phone, _ := client.NewPhone("0123456789")
		expected := client.NewClient(name, email, phone, "hashed_credential")

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Client mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, int64(0), actual.ID())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plain name ok",
				mutate: func(b *builder.ClientBuilder) { b.Name = "Bob" },
			},
			{
				name:   "empty name rejected",
				mutate: func(b *builder.ClientBuilder) { b.Name = "" },
				errIs:  client.ErrEmptyName,
			},
			{
				name:   "whitespace-only name rejected",
				mutate: func(b *builder.ClientBuilder) { b.Name = "   " },
				errIs:  client.ErrEmptyName,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email ok",
				mutate: func(b *builder.ClientBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email rejected",
				mutate: func(b *builder.ClientBuilder) { b.WithEmail("") },
				errIs:  client.ErrInvalidEmail,
			},
			{
				name:   "missing at-sign rejected",
				mutate: func(b *builder.ClientBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  client.ErrInvalidEmail,
			},
			{
				name:   "missing domain rejected",
				mutate: func(b *builder.ClientBuilder) { b.WithEmail("user@") },
				errIs:  client.ErrInvalidEmail,
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "ten digits ok",
				mutate: func(b *builder.ClientBuilder) { b.WithPhone("9876543210") },
			},
			{
				name:   "nine digits rejected",
				mutate: func(b *builder.ClientBuilder) { b.WithPhone("987654321") },
				errIs:  client.ErrInvalidPhone,
			},
			{
				name:   "eleven digits rejected",
				mutate: func(b *builder.ClientBuilder) { b.WithPhone("98765432101") },
				errIs:  client.ErrInvalidPhone,
			},
			{
				name:   "letters rejected",
				mutate: func(b *builder.ClientBuilder) { b.WithPhone("98765abcde") },
				errIs:  client.ErrInvalidPhone,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	t.Run("six characters ok", func(t *testing.T) {
		p, err := client.NewPassword("secret")
		require.NoError(t, err)
		assert.Equal(t, "secret", p.Value())
	})

	t.Run("five characters rejected", func(t *testing.T) {
		_, err := client.NewPassword("shor1")
		require.ErrorIs(t, err, client.ErrPasswordTooWeak)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := client.NewPassword("")
		require.ErrorIs(t, err, client.ErrPasswordTooWeak)
	})
}

func TestEmailCaseSensitivity(t *testing.T) {
	// Two addresses differing only in case are distinct identities.
	lower, err := client.NewEmail("alice@example.com")
	require.NoError(t, err)
	upper, err := client.NewEmail("Alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, lower.Value(), upper.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewClientBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
