package api

import (
	"log/slog"
	"net/http"

	"github.com/o-magnata69/back-end-api/internal/api/shared"
	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/service"
)

// QuestionHandler handles the /questoes routes.
type QuestionHandler struct {
	questionService service.QuestionService
	logger          *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questionService service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		questionService: questionService,
		logger:          logger.With("component", "question_handler"),
	}
}

// ListQuestions handles GET /questoes.
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.ListQuestions(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Não foi possível buscar as questões")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionsToResponse(questions))
}

// GetQuestion handles GET /questoes/{id}.
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	question, err := h.questionService.GetQuestion(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Não foi possível buscar a questão")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionToResponse(question))
}

// CreateQuestion handles POST /questoes.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, err := newCreateQuestionRequest(payload)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequired(req, domain.QuestionRequiredFields); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	question, err := h.questionService.CreateQuestion(r.Context(), req.Enunciado, req.Disciplina, req.Tema, req.Nivel)
	if err != nil {
		HandleAPIError(w, r, err, "Não foi possível criar a questão")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateQuestionResponse{
		Mensagem: "Questão criada com sucesso!",
		Questao:  questionToResponse(question),
	})
}

// UpdateQuestion handles PUT /questoes/{id}.
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.questionService.UpdateQuestion(r.Context(), id, payload); err != nil {
		HandleAPIError(w, r, err, "Não foi possível atualizar a questão")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{Message: "Questão atualizada com sucesso!"})
}

// DeleteQuestion handles DELETE /questoes/{id}.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	if err := h.questionService.DeleteQuestion(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Não foi possível excluir a questão")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Mensagem: "Questão excluída com sucesso!!"})
}
