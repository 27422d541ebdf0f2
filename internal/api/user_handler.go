package api

import (
	"log/slog"
	"net/http"

	"github.com/o-magnata69/back-end-api/internal/api/shared"
	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/platform/logger"
	"github.com/o-magnata69/back-end-api/internal/service"
)

// UserHandler handles the /usuarios routes.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		logger:      logger.With("component", "user_handler"),
	}
}

// ListUsers handles GET /usuarios.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Não foi possível buscar os usuários")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// GetUser handles GET /usuarios/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Não foi possível buscar o usuário")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// CreateUser handles POST /usuarios.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, err := newCreateUserRequest(payload)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequired(req, domain.UserRequiredFields); err != nil {
		log.Debug("create user rejected", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		HandleAPIError(w, r, err, "Não foi possível criar o usuário")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateUserResponse{
		Mensagem: "Usuário criado com sucesso!",
		Usuario:  userToResponse(user),
	})
}

// UpdateUser handles PUT /usuarios/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userService.UpdateUser(r.Context(), id, payload); err != nil {
		HandleAPIError(w, r, err, "Não foi possível atualizar o usuário")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{Message: "Usuário atualizado com sucesso!"})
}

// DeleteUser handles DELETE /usuarios/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Não foi possível excluir o usuário")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Mensagem: "Usuário excluído com sucesso!!"})
}
