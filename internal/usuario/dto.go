package usuario

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type CriarUsuarioRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type AdminRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

type SenhaTemporariaResponse struct {
	Senha string `json:"senha"`
}

const (
	// tamanho mínimo aceito para senha
	minSenha               = 8
	tamanhoSenhaTemporaria = 12
)
