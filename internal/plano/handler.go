package plano

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/auth"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/importacao"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/relatorio"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// FonteRealizado entrega a importação mais recente do ano
type FonteRealizado interface {
	UltimaDoAno(ctx context.Context, usuarioID uint, ano int) (*importacao.Importacao, error)
}

type Handler struct {
	Repo             Repository
	Realizado        FonteRealizado
	AnoPadrao        int
	MargemReferencia int
}

func NewHandler(repo Repository, fonte FonteRealizado, anoPadrao, margemRef int) *Handler {
	return &Handler{Repo: repo, Realizado: fonte, AnoPadrao: anoPadrao, MargemReferencia: margemRef}
}

// RegistrarRotas pendura as rotas de /planos no roteador autenticado
func (h *Handler) RegistrarRotas(r *mux.Router) {
	r.HandleFunc("/planos", h.Criar).Methods("POST")
	r.HandleFunc("/planos", h.Listar).Methods("GET")
	r.HandleFunc("/planos/{id}", h.Obter).Methods("GET")
	r.HandleFunc("/planos/{id}", h.Deletar).Methods("DELETE")
	r.HandleFunc("/planos/{id}/meses/{anomes}", h.AtualizarMes).Methods("PUT")
	r.HandleFunc("/planos/{id}/simular-vigente", h.SimularVigente).Methods("PUT")
	r.HandleFunc("/planos/{id}/margem", h.Margem).Methods("PUT")
	r.HandleFunc("/planos/{id}/propagar", h.Propagar).Methods("POST")
	r.HandleFunc("/planos/{id}/zerar", h.Zerar).Methods("POST")
	r.HandleFunc("/planos/{id}/simulacao", h.Simulacao).Methods("GET")
	r.HandleFunc("/planos/{id}/meses/{anomes}", h.DetalheMes).Methods("GET")
	r.HandleFunc("/planos/{id}/exportar.xlsx", h.ExportarXLSX).Methods("GET")
	r.HandleFunc("/planos/{id}/meses/{anomes}/resumo.csv", h.ResumoCSV).Methods("GET")
}

/* ============================== Utilidades ============================== */

// realizadoDoAno busca o realizado do ano; sem importação o ano todo fica aberto
func (h *Handler) realizadoDoAno(ctx context.Context, usuarioID uint, ano int) (map[int]realizado.Mes, int, error) {
	imp, err := h.Realizado.UltimaDoAno(ctx, usuarioID, ano)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[int]realizado.Mes{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return imp.PorMes(), imp.MesVigente, nil
}

// carregar lê o plano do usuário e aplica o realizado mais recente.
// Já respondeu ao cliente quando devolve ok == false.
func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) (*Plano, map[int]realizado.Mes, bool) {
	usuarioID, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return nil, nil, false
	}
	id, err := utils.VarInt(r, "id")
	if err != nil || id <= 0 {
		http.Error(w, "ID de plano inválido", http.StatusBadRequest)
		return nil, nil, false
	}

	p, err := h.Repo.BuscarPorID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "plano não encontrado", http.StatusNotFound)
			return nil, nil, false
		}
		config.LogError(config.GetLogger(), "plano", "carregar", "buscar plano", id, err)
		http.Error(w, "erro ao buscar plano", http.StatusInternalServerError)
		return nil, nil, false
	}
	if p.UsuarioID != usuarioID && !auth.IsAdmin(r.Context()) {
		http.Error(w, "plano não encontrado", http.StatusNotFound)
		return nil, nil, false
	}

	meses, vigente, err := h.realizadoDoAno(r.Context(), p.UsuarioID, p.Ano)
	if err != nil {
		config.LogError(config.GetLogger(), "plano", "carregar", "buscar realizado", p.Ano, err)
		http.Error(w, "erro ao buscar realizado", http.StatusInternalServerError)
		return nil, nil, false
	}
	p.Sincronizar(meses, vigente)
	return p, meses, true
}

func (h *Handler) salvar(w http.ResponseWriter, r *http.Request, p *Plano) bool {
	if err := h.Repo.Salvar(r.Context(), p); err != nil {
		config.LogError(config.GetLogger(), "plano", "salvar", "salvar plano", p.ID, err)
		http.Error(w, "erro ao salvar plano", http.StatusInternalServerError)
		return false
	}
	return true
}

func responderErroOperacao(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMesTravado):
		http.Error(w, "mês travado no realizado", http.StatusConflict)
	case errors.Is(err, ErrLATNegativo):
		http.Error(w, "LAT deve ser um número não negativo", http.StatusBadRequest)
	case errors.Is(err, ErrMesForaDoAno):
		http.Error(w, "mês fora do ano do plano", http.StatusBadRequest)
	case errors.Is(err, ErrMargem):
		http.Error(w, "margem inválida", http.StatusBadRequest)
	default:
		http.Error(w, "erro ao atualizar plano", http.StatusInternalServerError)
	}
}

func anoMesDaRota(w http.ResponseWriter, r *http.Request) (int, bool) {
	anoMes, err := utils.VarInt(r, "anomes")
	if err != nil {
		http.Error(w, "mês inválido, use YYYYMM", http.StatusBadRequest)
		return 0, false
	}
	return anoMes, true
}

/* ============================== Endpoints ============================== */

// POST /planos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var req CriarPlanoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Ano == 0 {
		req.Ano = h.AnoPadrao
	}
	if req.Ano < 1900 || req.Ano > 9999 {
		http.Error(w, "ano inválido", http.StatusBadRequest)
		return
	}

	meses, vigente, err := h.realizadoDoAno(r.Context(), usuarioID, req.Ano)
	if err != nil {
		config.LogError(config.GetLogger(), "plano", "Criar", "buscar realizado", req.Ano, err)
		http.Error(w, "erro ao buscar realizado", http.StatusInternalServerError)
		return
	}

	p := NovoPlano(req.Ano, meses, vigente)
	p.UsuarioID = usuarioID
	margem := req.MargemReferencia
	if margem == 0 {
		margem = h.MargemReferencia
	}
	if margem != 0 {
		if err := p.DefinirMargem(margem); err != nil {
			responderErroOperacao(w, err)
			return
		}
	}

	if err := h.Repo.Criar(r.Context(), &p); err != nil {
		config.LogError(config.GetLogger(), "plano", "Criar", "criar plano", req, err)
		http.Error(w, "erro ao criar plano", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, Montar(&p, meses))
}

// GET /planos?ano=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	ano := 0
	if s := r.URL.Query().Get("ano"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "ano inválido", http.StatusBadRequest)
			return
		}
		ano = v
	}

	planos, err := h.Repo.ListarPorUsuario(r.Context(), usuarioID, ano)
	if err != nil {
		config.LogError(config.GetLogger(), "plano", "Listar", "listar planos", ano, err)
		http.Error(w, "erro ao listar planos", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, planos)
}

// GET /planos/{id}
func (h *Handler) Obter(w http.ResponseWriter, r *http.Request) {
	p, _, ok := h.carregar(w, r)
	if !ok {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// DELETE /planos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	p, _, ok := h.carregar(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Deletar(r.Context(), p); err != nil {
		config.LogError(config.GetLogger(), "plano", "Deletar", "deletar plano", p.ID, err)
		http.Error(w, "erro ao deletar plano", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PUT /planos/{id}/meses/{anomes}
func (h *Handler) AtualizarMes(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	anoMes, ok := anoMesDaRota(w, r)
	if !ok {
		return
	}

	var req AtualizarMesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := p.AtualizarMes(anoMes, req.LAT, req.Obs); err != nil {
		responderErroOperacao(w, err)
		return
	}
	if !h.salvar(w, r, p) {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, Montar(p, meses))
}

// PUT /planos/{id}/simular-vigente
func (h *Handler) SimularVigente(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	var req SimularVigenteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	p.SimularVigente = req.Simular
	if !h.salvar(w, r, p) {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, Montar(p, meses))
}

// PUT /planos/{id}/margem
func (h *Handler) Margem(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	var req MargemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := p.DefinirMargem(req.MargemReferencia); err != nil {
		responderErroOperacao(w, err)
		return
	}
	if !h.salvar(w, r, p) {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, Montar(p, meses))
}

// POST /planos/{id}/propagar
func (h *Handler) Propagar(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	var req PropagarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	alterados, err := p.Propagar(req.AnoMes)
	if err != nil {
		responderErroOperacao(w, err)
		return
	}
	if !h.salvar(w, r, p) {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, PropagarResponse{Alterados: alterados, Simulacao: Montar(p, meses)})
}

// POST /planos/{id}/zerar
func (h *Handler) Zerar(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	p.Zerar(meses)
	if !h.salvar(w, r, p) {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, Montar(p, meses))
}

// GET /planos/{id}/simulacao
func (h *Handler) Simulacao(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, Montar(p, meses))
}

// GET /planos/{id}/meses/{anomes}?margem=
func (h *Handler) DetalheMes(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	anoMes, ok := anoMesDaRota(w, r)
	if !ok {
		return
	}
	margem := 0
	if s := r.URL.Query().Get("margem"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "margem inválida", http.StatusBadRequest)
			return
		}
		margem = v
	}

	d, err := Detalhar(p, meses, anoMes, margem)
	if err != nil {
		responderErroOperacao(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, d)
}

// GET /planos/{id}/exportar.xlsx
func (h *Handler) ExportarXLSX(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	dados, err := relatorio.TabelaXLSX(Montar(p, meses).Tabela)
	if err != nil {
		config.LogError(config.GetLogger(), "plano", "ExportarXLSX", "gerar planilha", p.ID, err)
		http.Error(w, "erro ao gerar planilha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=simulacao_%d.xlsx", p.Ano))
	_, _ = w.Write(dados)
}

// GET /planos/{id}/meses/{anomes}/resumo.csv
func (h *Handler) ResumoCSV(w http.ResponseWriter, r *http.Request) {
	p, meses, ok := h.carregar(w, r)
	if !ok {
		return
	}
	anoMes, ok := anoMesDaRota(w, r)
	if !ok {
		return
	}
	d, err := Detalhar(p, meses, anoMes, 0)
	if err != nil {
		responderErroOperacao(w, err)
		return
	}

	dados, err := relatorio.ResumoMesCSV(anoMes, d.LAT, d.PIS, d.COFINS)
	if err != nil {
		config.LogError(config.GetLogger(), "plano", "ResumoCSV", "gerar csv", anoMes, err)
		http.Error(w, "erro ao gerar resumo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=resumo_%d.csv", anoMes))
	_, _ = w.Write(dados)
}
