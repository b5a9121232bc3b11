package usuario

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/auth"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/utils"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoMemoria struct {
	porID map[uint]*Usuario
}

func novoRepo() *repoMemoria { return &repoMemoria{porID: map[uint]*Usuario{}} }

func (r *repoMemoria) BuscarPorEmail(_ context.Context, email string) (*Usuario, error) {
	for _, u := range r.porID {
		if u.Email == normalizarEmail(email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repoMemoria) BuscarPorID(_ context.Context, id uint) (*Usuario, error) {
	if u, ok := r.porID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repoMemoria) Salvar(_ context.Context, u *Usuario) error {
	if u.ID == 0 {
		u.ID = uint(len(r.porID) + 1)
	}
	r.porID[u.ID] = u
	return nil
}

func (r *repoMemoria) Contar(context.Context) (int64, error) { return int64(len(r.porID)), nil }

func (r *repoMemoria) DefinirAdmin(_ context.Context, id uint, admin bool) error {
	u, ok := r.porID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsAdmin = admin
	return nil
}

func novoHandler(repo Repository) *Handler {
	return &Handler{
		Repo: repo,
		Tokens: func(w http.ResponseWriter, id uint, admin bool) (auth.TokenResponse, error) {
			return auth.TokenResponse{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 900}, nil
		},
	}
}

func chamar(h http.HandlerFunc, metodo, corpo string, ctx context.Context) *httptest.ResponseRecorder {
	req := httptest.NewRequest(metodo, "/", strings.NewReader(corpo))
	if ctx != nil {
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCriarPrimeiroUsuarioViraAdmin(t *testing.T) {
	repo := novoRepo()
	h := novoHandler(repo)

	rec := chamar(h.Criar, http.MethodPost, `{"nome":"Ana","email":" Ana@Loja.com ","senha":"segredo123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "segredo123")

	u := repo.porID[1]
	require.NotNil(t, u)
	assert.Equal(t, "ana@loja.com", u.Email)
	assert.True(t, u.IsAdmin)
	assert.True(t, utils.ConferirSenha(u.Senha, "segredo123"))

	rec = chamar(h.Criar, http.MethodPost, `{"nome":"Bia","email":"bia@loja.com","senha":"segredo123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.False(t, repo.porID[2].IsAdmin)
}

func TestCriarValidacoes(t *testing.T) {
	repo := novoRepo()
	h := novoHandler(repo)

	assert.Equal(t, http.StatusBadRequest, chamar(h.Criar, http.MethodPost, `{`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, chamar(h.Criar, http.MethodPost, `{"email":"sem-arroba","senha":"segredo123"}`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, chamar(h.Criar, http.MethodPost, `{"email":"a@b.com","senha":"curta"}`, nil).Code)

	require.Equal(t, http.StatusCreated, chamar(h.Criar, http.MethodPost, `{"email":"a@b.com","senha":"segredo123"}`, nil).Code)
	assert.Equal(t, http.StatusConflict, chamar(h.Criar, http.MethodPost, `{"email":"A@B.com","senha":"segredo123"}`, nil).Code)
}

func TestLogin(t *testing.T) {
	repo := novoRepo()
	h := novoHandler(repo)
	require.Equal(t, http.StatusCreated, chamar(h.Criar, http.MethodPost, `{"email":"a@b.com","senha":"segredo123"}`, nil).Code)

	rec := chamar(h.Login, http.MethodPost, `{"email":"a@b.com","senha":"segredo123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp auth.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.AccessToken)

	assert.Equal(t, http.StatusUnauthorized, chamar(h.Login, http.MethodPost, `{"email":"a@b.com","senha":"errada"}`, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, chamar(h.Login, http.MethodPost, `{"email":"x@b.com","senha":"segredo123"}`, nil).Code)
}

func TestMe(t *testing.T) {
	repo := novoRepo()
	h := novoHandler(repo)
	require.NoError(t, repo.Salvar(context.Background(), &Usuario{Nome: "Ana", Email: "a@b.com"}))

	assert.Equal(t, http.StatusUnauthorized, chamar(h.Me, http.MethodGet, "", nil).Code)

	rec := chamar(h.Me, http.MethodGet, "", auth.ComUsuario(context.Background(), 1, false))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nome":"Ana"`)

	assert.Equal(t, http.StatusNotFound, chamar(h.Me, http.MethodGet, "", auth.ComUsuario(context.Background(), 99, false)).Code)
}

func TestDefinirAdmin(t *testing.T) {
	repo := novoRepo()
	h := novoHandler(repo)
	require.NoError(t, repo.Salvar(context.Background(), &Usuario{Email: "a@b.com"}))

	r := mux.NewRouter()
	r.HandleFunc("/usuarios/{id}/admin", h.DefinirAdmin).Methods("PUT")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/usuarios/1/admin", strings.NewReader(`{"isAdmin":true}`)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, repo.porID[1].IsAdmin)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/usuarios/5/admin", strings.NewReader(`{"isAdmin":true}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetarSenha(t *testing.T) {
	repo := novoRepo()
	h := novoHandler(repo)
	hash, err := utils.HashSenha("antiga123")
	require.NoError(t, err)
	require.NoError(t, repo.Salvar(context.Background(), &Usuario{Email: "a@b.com", Senha: hash}))

	r := mux.NewRouter()
	r.HandleFunc("/usuarios/{id}/senha-temporaria", h.ResetarSenha).Methods("POST")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/usuarios/1/senha-temporaria", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SenhaTemporariaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Senha, 12)
	assert.True(t, utils.ConferirSenha(repo.porID[1].Senha, resp.Senha))
	assert.False(t, utils.ConferirSenha(repo.porID[1].Senha, "antiga123"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/usuarios/9/senha-temporaria", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
