package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("creates client with valid inputs", func(t *testing.T) {
		client, err := NewClient("Maria", "Lopez", "12345678Z", "maria@example.com")
		require.NoError(t, err)
		require.NotNil(t, client)

		assert.Equal(t, "Maria", client.FirstName)
		assert.Equal(t, "Lopez", client.LastName)
		assert.Equal(t, "12345678Z", client.DNI)
		assert.Equal(t, "maria@example.com", client.Email)
		assert.Zero(t, client.ID)
		assert.False(t, client.CreatedAt.IsZero())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		client, err := NewClient("  Maria ", " Lopez ", " 12345678Z ", " maria@example.com ")
		require.NoError(t, err)
		assert.Equal(t, "Maria", client.FirstName)
		assert.Equal(t, "Lopez", client.LastName)
		assert.Equal(t, "12345678Z", client.DNI)
		assert.Equal(t, "maria@example.com", client.Email)
	})

	t.Run("fails with empty first name", func(t *testing.T) {
		_, err := NewClient("", "Lopez", "12345678Z", "")
		require.Error(t, err)
	})

	t.Run("fails with empty last name", func(t *testing.T) {
		_, err := NewClient("Maria", "   ", "12345678Z", "")
		require.Error(t, err)
	})

	t.Run("fails with empty DNI", func(t *testing.T) {
		_, err := NewClient("Maria", "Lopez", "", "")
		require.Error(t, err)
	})
}

func TestClientFullName(t *testing.T) {
	client, err := NewClient("Maria", "Lopez", "12345678Z", "")
	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", client.FullName())
}

func TestClientBuilders(t *testing.T) {
	client, err := NewClient("Maria", "Lopez", "12345678Z", "")
	require.NoError(t, err)

	birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	client.WithPhone("600111222").WithAddress("Calle Mayor 1").WithBirthDate(birth)

	assert.Equal(t, "600111222", client.Phone)
	assert.Equal(t, "Calle Mayor 1", client.Address)
	require.NotNil(t, client.BirthDate)
	assert.True(t, client.BirthDate.Equal(birth))
}
