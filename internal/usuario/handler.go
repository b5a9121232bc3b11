package usuario

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/auth"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/utils"
	"gorm.io/gorm"
)

// EmissorTokens gera o access token e o cookie de refresh no login
type EmissorTokens func(w http.ResponseWriter, usuarioID uint, isAdmin bool) (auth.TokenResponse, error)

type Handler struct {
	Repo   Repository
	Tokens EmissorTokens
}

// NewHandler liga o handler ao banco; o login abre uma família de refresh no mesmo banco
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo: NewRepository(db),
		Tokens: func(w http.ResponseWriter, usuarioID uint, isAdmin bool) (auth.TokenResponse, error) {
			return auth.EmitirTokensNoLogin(db, w, usuarioID, isAdmin)
		},
	}
}

// Criar cadastra um usuário. O primeiro usuário do sistema vira administrador.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	logger := config.GetLogger()

	var req CriarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Email = normalizarEmail(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		http.Error(w, "e-mail inválido", http.StatusBadRequest)
		return
	}
	if len(req.Senha) < minSenha {
		http.Error(w, "a senha deve ter ao menos 8 caracteres", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, err := h.Repo.BuscarPorEmail(ctx, req.Email); err == nil {
		http.Error(w, "e-mail já cadastrado", http.StatusConflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		config.LogError(logger, "usuario", "Criar", "buscar e-mail", req.Email, err)
		http.Error(w, "erro ao cadastrar usuário", http.StatusInternalServerError)
		return
	}

	total, err := h.Repo.Contar(ctx)
	if err != nil {
		config.LogError(logger, "usuario", "Criar", "contar usuários", nil, err)
		http.Error(w, "erro ao cadastrar usuário", http.StatusInternalServerError)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		config.LogError(logger, "usuario", "Criar", "hash da senha", nil, err)
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{Nome: strings.TrimSpace(req.Nome), Email: req.Email, Senha: hash, IsAdmin: total == 0}
	if err := h.Repo.Salvar(ctx, &u); err != nil {
		config.LogError(logger, "usuario", "Criar", "salvar", req.Email, err)
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, u)
}

// Login valida e-mail e senha e devolve o access token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	u, err := h.Repo.BuscarPorEmail(r.Context(), req.Email)
	if err != nil || !utils.ConferirSenha(u.Senha, req.Senha) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	resp, err := h.Tokens(w, u.ID, u.IsAdmin)
	if err != nil {
		config.LogError(config.GetLogger(), "usuario", "Login", "emitir tokens", u.ID, err)
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, resp)
}

// Me devolve o usuário autenticado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	u, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, u)
}

// DefinirAdmin promove ou rebaixa um usuário (rota só para admins)
func (h *Handler) DefinirAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := utils.VarInt(r, "id")
	if err != nil || id <= 0 {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req AdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.Repo.DefinirAdmin(r.Context(), uint(id), req.IsAdmin); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "usuário não encontrado", http.StatusNotFound)
			return
		}
		config.LogError(config.GetLogger(), "usuario", "DefinirAdmin", "atualizar", id, err)
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetarSenha troca a senha do usuário por uma temporária e a devolve uma única vez (rota só para admins)
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	logger := config.GetLogger()

	id, err := utils.VarInt(r, "id")
	if err != nil || id <= 0 {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	u, err := h.Repo.BuscarPorID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "usuário não encontrado", http.StatusNotFound)
			return
		}
		config.LogError(logger, "usuario", "ResetarSenha", "buscar", id, err)
		http.Error(w, "erro ao buscar usuário", http.StatusInternalServerError)
		return
	}

	temporaria, err := utils.GerarSenhaTemporaria(tamanhoSenhaTemporaria)
	if err != nil {
		config.LogError(logger, "usuario", "ResetarSenha", "gerar senha", id, err)
		http.Error(w, "erro ao gerar senha", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(temporaria)
	if err != nil {
		config.LogError(logger, "usuario", "ResetarSenha", "hash da senha", id, err)
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u.Senha = hash
	if err := h.Repo.Salvar(r.Context(), u); err != nil {
		config.LogError(logger, "usuario", "ResetarSenha", "salvar", id, err)
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, SenhaTemporariaResponse{Senha: temporaria})
}
