package domain

// Question field names as they appear in payloads and in the questoes table.
const (
	QuestionFieldEnunciado  = "enunciado"
	QuestionFieldDisciplina = "disciplina"
	QuestionFieldTema       = "tema"
	QuestionFieldNivel      = "nivel"
)

// QuestionRequiredFields lists the fields a question must carry on create, in order.
var QuestionRequiredFields = []string{
	QuestionFieldEnunciado,
	QuestionFieldDisciplina,
	QuestionFieldTema,
	QuestionFieldNivel,
}

// Question is a row of the questoes collection.
type Question struct {
	ID         int64  `json:"id"`
	Enunciado  string `json:"enunciado"`
	Disciplina string `json:"disciplina"`
	Tema       string `json:"tema"`
	Nivel      string `json:"nivel"`
}

// NewQuestion creates a Question and validates it.
func NewQuestion(enunciado, disciplina, tema, nivel string) (*Question, error) {
	q := &Question{
		Enunciado:  enunciado,
		Disciplina: disciplina,
		Tema:       tema,
		Nivel:      nivel,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks that all four content fields are non-empty.
func (q *Question) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{QuestionFieldEnunciado, q.Enunciado},
		{QuestionFieldDisciplina, q.Disciplina},
		{QuestionFieldTema, q.Tema},
		{QuestionFieldNivel, q.Nivel},
	}
	for _, f := range fields {
		if f.value == "" {
			return NewValidationError(f.name, "cannot be empty", ErrValidation)
		}
	}
	return nil
}

// Merge applies the truthy fields of p on top of q.
func (q *Question) Merge(p Payload) error {
	merged := *q

	var err error
	if merged.Enunciado, err = p.merge(QuestionFieldEnunciado, q.Enunciado); err != nil {
		return err
	}
	if merged.Disciplina, err = p.merge(QuestionFieldDisciplina, q.Disciplina); err != nil {
		return err
	}
	if merged.Tema, err = p.merge(QuestionFieldTema, q.Tema); err != nil {
		return err
	}
	if merged.Nivel, err = p.merge(QuestionFieldNivel, q.Nivel); err != nil {
		return err
	}

	*q = merged
	return nil
}
