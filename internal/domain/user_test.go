package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := NewUser("Ana", "a@x.com", "s")
		require.NoError(t, err)
		assert.Equal(t, int64(0), u.ID, "id is assigned by the database")
		assert.Equal(t, "Ana", u.Nome)
		assert.Equal(t, "s", u.Senha)
	})

	tests := []struct {
		name  string
		nome  string
		email string
		senha string
		field string
	}{
		{"missing nome", "", "a@x.com", "s", UserFieldNome},
		{"missing email", "Ana", "", "s", UserFieldEmail},
		{"missing senha", "Ana", "a@x.com", "", UserFieldSenha},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.nome, tt.email, tt.senha)
			assert.Nil(t, u)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestUserValidateAcceptsStoredHash(t *testing.T) {
	u := &User{ID: 1, Nome: "Ana", Email: "a@x.com", SenhaHash: "$2a$10$hash"}
	assert.NoError(t, u.Validate())
}

func TestUserMerge(t *testing.T) {
	stored := func() *User {
		return &User{ID: 9, Nome: "Ana", Email: "a@x.com", SenhaHash: "hash"}
	}

	t.Run("partial payload keeps other fields", func(t *testing.T) {
		u := stored()
		require.NoError(t, u.Merge(Payload{"nome": "X"}))
		assert.Equal(t, "X", u.Nome)
		assert.Equal(t, "a@x.com", u.Email)
		assert.Equal(t, "hash", u.SenhaHash)
		assert.Empty(t, u.Senha, "no new credential was supplied")
	})

	t.Run("falsy values are treated as absent", func(t *testing.T) {
		u := stored()
		require.NoError(t, u.Merge(Payload{"nome": "", "email": nil, "senha": false}))
		assert.Equal(t, "Ana", u.Nome)
		assert.Equal(t, "a@x.com", u.Email)
		assert.Empty(t, u.Senha)
	})

	t.Run("new senha is staged for hashing", func(t *testing.T) {
		u := stored()
		require.NoError(t, u.Merge(Payload{"senha": "nova"}))
		assert.Equal(t, "nova", u.Senha)
		assert.Equal(t, "hash", u.SenhaHash)
	})

	t.Run("id is never changed", func(t *testing.T) {
		u := stored()
		require.NoError(t, u.Merge(Payload{"id": 42.0, "nome": "Bia"}))
		assert.Equal(t, int64(9), u.ID)
	})

	t.Run("non scalar field is rejected", func(t *testing.T) {
		u := stored()
		err := u.Merge(Payload{"email": []any{"x"}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFieldType))
	})
}
