package domain

// User field names as they appear in payloads and in the usuarios table.
const (
	UserFieldNome  = "nome"
	UserFieldEmail = "email"
	UserFieldSenha = "senha"
)

// UserRequiredFields lists the fields a user must carry on create, in order.
var UserRequiredFields = []string{UserFieldNome, UserFieldEmail, UserFieldSenha}

// User is a row of the usuarios collection.
//
// Senha holds a plaintext credential only while a create or update is in
// flight; the store persists SenhaHash. Neither is ever serialized.
type User struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Senha     string `json:"-"`
	SenhaHash string `json:"-"`
}

// NewUser creates a User from the three required fields and validates it.
func NewUser(nome, email, senha string) (*User, error) {
	u := &User{
		Nome:  nome,
		Email: email,
		Senha: senha,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the non-null invariant of a user record.
// A user needs either a pending plaintext Senha or a stored SenhaHash.
func (u *User) Validate() error {
	if u.Nome == "" {
		return NewValidationError(UserFieldNome, "cannot be empty", ErrValidation)
	}
	if u.Email == "" {
		return NewValidationError(UserFieldEmail, "cannot be empty", ErrValidation)
	}
	if u.Senha == "" && u.SenhaHash == "" {
		return NewValidationError(UserFieldSenha, "cannot be empty", ErrValidation)
	}
	return nil
}

// Merge applies the truthy fields of p on top of u. Absent or falsy fields keep
// the stored value. A truthy senha is placed in Senha for the caller to hash;
// the existing SenhaHash is left untouched.
func (u *User) Merge(p Payload) error {
	nome, err := p.merge(UserFieldNome, u.Nome)
	if err != nil {
		return err
	}
	email, err := p.merge(UserFieldEmail, u.Email)
	if err != nil {
		return err
	}
	senha, err := p.merge(UserFieldSenha, "")
	if err != nil {
		return err
	}

	u.Nome = nome
	u.Email = email
	u.Senha = senha
	return nil
}
