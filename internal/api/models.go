package api

import (
	"github.com/o-magnata69/back-end-api/internal/domain"
)

// CreateUserRequest defines the payload for POST /usuarios.
type CreateUserRequest struct {
	Nome  string `json:"nome"  validate:"required"`
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// newCreateUserRequest builds a CreateUserRequest from a decoded payload.
func newCreateUserRequest(p domain.Payload) (*CreateUserRequest, error) {
	v, err := payloadStrings(p, domain.UserRequiredFields...)
	if err != nil {
		return nil, err
	}
	return &CreateUserRequest{
		Nome:  v[domain.UserFieldNome],
		Email: v[domain.UserFieldEmail],
		Senha: v[domain.UserFieldSenha],
	}, nil
}

// CreateQuestionRequest defines the payload for POST /questoes.
type CreateQuestionRequest struct {
	Enunciado  string `json:"enunciado"  validate:"required"`
	Disciplina string `json:"disciplina" validate:"required"`
	Tema       string `json:"tema"       validate:"required"`
	Nivel      string `json:"nivel"      validate:"required"`
}

func newCreateQuestionRequest(p domain.Payload) (*CreateQuestionRequest, error) {
	v, err := payloadStrings(p, domain.QuestionRequiredFields...)
	if err != nil {
		return nil, err
	}
	return &CreateQuestionRequest{
		Enunciado:  v[domain.QuestionFieldEnunciado],
		Disciplina: v[domain.QuestionFieldDisciplina],
		Tema:       v[domain.QuestionFieldTema],
		Nivel:      v[domain.QuestionFieldNivel],
	}, nil
}

// UserResponse is a user as returned to clients. It never carries senha.
type UserResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// QuestionResponse is a question as returned to clients.
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Enunciado  string `json:"enunciado"`
	Disciplina string `json:"disciplina"`
	Tema       string `json:"tema"`
	Nivel      string `json:"nivel"`
}

// CreateUserResponse is the 201 body of POST /usuarios.
type CreateUserResponse struct {
	Mensagem string       `json:"mensagem"`
	Usuario  UserResponse `json:"usuario"`
}

// CreateQuestionResponse is the 201 body of POST /questoes.
type CreateQuestionResponse struct {
	Mensagem string           `json:"mensagem"`
	Questao  QuestionResponse `json:"questao"`
}

// UpdateResponse is the 200 body of the PUT routes.
type UpdateResponse struct {
	Message string `json:"message"`
}

// DeleteResponse is the 200 body of the DELETE routes.
type DeleteResponse struct {
	Mensagem string `json:"mensagem"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Message  string `json:"message"`
	Author   string `json:"author"`
	DBStatus string `json:"dbStatus"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Nome: u.Nome, Email: u.Email}
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

func questionToResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Enunciado:  q.Enunciado,
		Disciplina: q.Disciplina,
		Tema:       q.Tema,
		Nivel:      q.Nivel,
	}
}

func questionsToResponse(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionToResponse(q))
	}
	return out
}
