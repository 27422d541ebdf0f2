package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/o-magnata69/back-end-api/internal/api"
	"github.com/o-magnata69/back-end-api/internal/api/shared"
	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Scenario(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/usuarios", `{"nome":"Ana","email":"a@x.com","senha":"123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[api.CreateUserResponse](t, w)
	assert.Equal(t, "Usuário criado com sucesso!", created.Mensagem)
	assert.Equal(t, "Ana", created.Usuario.Nome)
	assert.NotContains(t, w.Body.String(), "senha")
	id := created.Usuario.ID
	require.NotZero(t, id)

	path := "/usuarios/" + itoa(id)

	w = env.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[map[string]any](t, w)
	assert.Equal(t, map[string]any{"id": float64(id), "nome": "Ana", "email": "a@x.com"}, got)

	w = env.do(t, http.MethodPut, path, `{"nome":"Ana Maria"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Usuário atualizado com sucesso!"}`, w.Body.String())

	w = env.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody[api.UserResponse](t, w)
	assert.Equal(t, "Ana Maria", user.Nome)
	assert.Equal(t, "a@x.com", user.Email)

	stored, err := env.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, "123", stored.SenhaHash)
	assert.NotEmpty(t, stored.SenhaHash)

	w = env.do(t, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mensagem":"Usuário excluído com sucesso!!"}`, w.Body.String())

	w = env.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	notFound := decodeBody[shared.ErrorResponse](t, w)
	assert.Equal(t, "Usuário não encontrado", notFound.Mensagem)
	assert.NotEmpty(t, notFound.TraceID)

	w = env.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_List(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/usuarios", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	env.do(t, http.MethodPost, "/usuarios", `{"nome":"Ana","email":"a@x.com","senha":"1"}`)
	env.do(t, http.MethodPost, "/usuarios", `{"nome":"Bia","email":"b@x.com","senha":"2"}`)

	w = env.do(t, http.MethodGet, "/usuarios", "")
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeBody[[]api.UserResponse](t, w)
	require.Len(t, users, 2)
	assert.NotEqual(t, users[0].ID, users[1].ID)
	assert.NotContains(t, w.Body.String(), "senha")

	again := env.do(t, http.MethodGet, "/usuarios", "")
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestUserHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		missing []string
	}{
		{name: "missing senha", body: `{"nome":"Ana","email":"a@x.com"}`, status: http.StatusBadRequest, missing: []string{"senha"}},
		{name: "empty nome", body: `{"nome":"","email":"a@x.com","senha":"1"}`, status: http.StatusBadRequest, missing: []string{"nome"}},
		{name: "zero and false are absent", body: `{"nome":0,"email":false,"senha":"1"}`, status: http.StatusBadRequest, missing: []string{"nome", "email"}},
		{name: "empty object", body: `{}`, status: http.StatusBadRequest, missing: []string{"nome", "email", "senha"}},
		{name: "no body", body: ``, status: http.StatusBadRequest, missing: []string{"nome", "email", "senha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			w := env.do(t, http.MethodPost, "/usuarios", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())

			body := decodeBody[shared.ErrorResponse](t, w)
			assert.Equal(t, api.CategoryInvalidData, body.Erro)
			assert.Equal(t, "Todos os campos (nome, email, senha) são obrigatórios.", body.Mensagem)
			assert.Equal(t, tt.missing, body.Campos)
			assert.Zero(t, env.users.CreateCalls)
		})
	}
}

func TestUserHandler_BadInput(t *testing.T) {
	env := newTestEnv(t)

	t.Run("non numeric id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/usuarios/abc", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody[shared.ErrorResponse](t, w)
		assert.Equal(t, api.CategoryInvalidID, body.Erro)
	})

	t.Run("negative id", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/usuarios/-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("array body", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/usuarios", `["Ana"]`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("object field", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/usuarios", `{"nome":{"first":"Ana"},"email":"a@x.com","senha":"1"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody[shared.ErrorResponse](t, w)
		assert.Equal(t, "Campo inválido: nome", body.Mensagem)
		assert.Zero(t, env.users.CreateCalls)
	})

	t.Run("update of missing user", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/usuarios/404", `{"nome":"X"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.users.ListFn = func(context.Context) ([]*domain.User, error) {
		return nil, errors.New("dial tcp 10.0.0.5:5432: connection refused")
	}

	w := env.do(t, http.MethodGet, "/usuarios", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody[shared.ErrorResponse](t, w)
	assert.Equal(t, "Erro interno do servidor", body.Erro)
	assert.Equal(t, "Não foi possível buscar os usuários", body.Mensagem)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestUserHandler_LongSenha(t *testing.T) {
	hasher := auth.NewBcryptHasher(4)
	env := newTestEnvWithHasher(t, hasher)
	long := strings.Repeat("x", 80)

	w := env.do(t, http.MethodPost, "/usuarios", `{"nome":"Ana","email":"a@x.com","senha":"`+long+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody[api.CreateUserResponse](t, w).Usuario.ID

	stored, err := env.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(stored.SenhaHash, long))

	longer := strings.Repeat("y", 200)
	w = env.do(t, http.MethodPut, "/usuarios/"+itoa(id), `{"senha":"`+longer+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err = env.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(stored.SenhaHash, longer))
	assert.Error(t, hasher.Compare(stored.SenhaHash, long))
}
