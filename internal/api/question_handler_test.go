package api_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/o-magnata69/back-end-api/internal/api"
	"github.com/o-magnata69/back-end-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestQuestionHandler_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/questoes",
		`{"enunciado":"2+2?","disciplina":"Matemática","tema":"Soma","nivel":"fácil"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[api.CreateQuestionResponse](t, w)
	assert.Equal(t, "Questão criada com sucesso!", created.Mensagem)
	id := created.Questao.ID
	path := "/questoes/" + itoa(id)

	w = env.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	q := decodeBody[api.QuestionResponse](t, w)
	assert.Equal(t, created.Questao, q)

	w = env.do(t, http.MethodPut, path, `{"nivel":2,"tema":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Questão atualizada com sucesso!"}`, w.Body.String())

	w = env.do(t, http.MethodGet, path, "")
	q = decodeBody[api.QuestionResponse](t, w)
	assert.Equal(t, "2", q.Nivel)
	assert.Equal(t, "Soma", q.Tema)

	w = env.do(t, http.MethodGet, "/questoes", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[[]api.QuestionResponse](t, w)
	assert.Len(t, list, 1)

	w = env.do(t, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mensagem":"Questão excluída com sucesso!!"}`, w.Body.String())

	w = env.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Questão não encontrada", decodeBody[shared.ErrorResponse](t, w).Mensagem)
}

func TestQuestionHandler_CreateMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/questoes", `{"enunciado":"2+2?","nivel":"fácil"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[shared.ErrorResponse](t, w)
	assert.Equal(t, "Todos os campos (enunciado, disciplina, tema, nivel) são obrigatórios.", body.Mensagem)
	assert.Equal(t, []string{"disciplina", "tema"}, body.Campos)
	assert.Zero(t, env.questions.Len())
}

func TestQuestionHandler_UpdateMissing(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/questoes/12", `{"tema":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPut, "/questoes/1.5", `{"tema":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
