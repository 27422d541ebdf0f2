package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/o-magnata69/back-end-api/internal/api/shared"
	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/store"
)

// Error categories returned in the erro field.
const (
	CategoryInvalidData = "Dados inválidos"
	CategoryInvalidID   = "ID inválido"
	CategoryNotFound    = "Não encontrado"
	CategoryConflict    = "Conflito"
	CategoryInternal    = "Erro interno do servidor"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidPayload),
		errors.Is(err, domain.ErrInvalidFieldType),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToCategory returns the erro value for err.
func MapErrorToCategory(err error) string {
	switch MapErrorToStatusCode(err) {
	case http.StatusNotFound:
		return CategoryNotFound
	case http.StatusConflict:
		return CategoryConflict
	case http.StatusBadRequest:
		if errors.Is(err, domain.ErrInvalidID) {
			return CategoryInvalidID
		}
		return CategoryInvalidData
	default:
		return CategoryInternal
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Ocorreu um erro inesperado"
	}

	var missing *domain.MissingFieldsError
	var invalid *domain.ValidationError

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "Usuário não encontrado"

	case errors.Is(err, store.ErrQuestionNotFound):
		return "Questão não encontrada"

	case store.IsNotFoundError(err):
		return "Registro não encontrado"

	case errors.Is(err, store.ErrDuplicate):
		return "Registro já existe"

	case errors.As(err, &missing):
		return fmt.Sprintf("Todos os campos (%s) são obrigatórios.", strings.Join(missing.Required, ", "))

	case errors.Is(err, domain.ErrInvalidID):
		return "O ID deve ser um número inteiro positivo"

	case errors.Is(err, domain.ErrInvalidPayload):
		return "O corpo da requisição deve ser um objeto JSON"

	case errors.Is(err, domain.ErrInvalidFieldType) && errors.As(err, &invalid):
		return fmt.Sprintf("Campo inválido: %s", invalid.Field)

	case errors.As(err, &invalid):
		return fmt.Sprintf("Campo inválido: %s", invalid.Field)

	case errors.Is(err, store.ErrInvalidEntity):
		return "Dados inválidos para o registro"

	default:
		return "Ocorreu um erro inesperado"
	}
}

// HandleAPIError writes the error response for err.
// 5xx responses carry CategoryInternal and defaultMsg; the details of err
// only reach the (redacted) logs.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	category := MapErrorToCategory(err)

	message := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	var opts []shared.ResponseOption
	var missing *domain.MissingFieldsError
	if errors.As(err, &missing) {
		opts = append(opts, shared.WithFields(missing.Missing))
	}
	if status == http.StatusConflict {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, category, message, err, opts...)
}
