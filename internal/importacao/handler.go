package importacao

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/auth"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/fonte"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/notas"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/utils"
	"gorm.io/gorm"
)

const limiteUpload = 32 << 20

// Carregador busca a planilha nas fontes configuradas
type Carregador interface {
	Carregar(ctx context.Context) (fonte.Resultado, error)
}

type Handler struct {
	Repo             Repository
	Fontes           Carregador
	AnoPadrao        int
	MargemReferencia int
}

func NewHandler(repo Repository, fontes Carregador, anoPadrao, margemRef int) *Handler {
	return &Handler{Repo: repo, Fontes: fontes, AnoPadrao: anoPadrao, MargemReferencia: margemRef}
}

// Upload recebe a planilha pelo campo multipart "arquivo"
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	ano, err := h.anoDaRequisicao(r)
	if err != nil {
		http.Error(w, "ano inválido", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(limiteUpload); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	arquivo, cabecalho, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "campo 'arquivo' ausente", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	linhas, err := notas.LerPlanilha(arquivo)
	if err != nil {
		config.LogError(config.GetLogger(), "importacao", "Upload", "ler planilha", cabecalho.Filename, err)
		http.Error(w, "não foi possível ler a planilha", http.StatusUnprocessableEntity)
		return
	}

	h.salvarEResponder(w, r, Processar(linhas, ano, "upload:"+cabecalho.Filename), usuarioID)
}

// Carregar tenta URL, arquivo local e GCS, nessa ordem
func (h *Handler) Carregar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	ano, err := h.anoDaRequisicao(r)
	if err != nil {
		http.Error(w, "ano inválido", http.StatusBadRequest)
		return
	}

	res, err := h.Fontes.Carregar(r.Context())
	if err != nil {
		config.LogError(config.GetLogger(), "importacao", "Carregar", "carregar fontes", nil, err)
		if errors.Is(err, fonte.ErrNenhumaFonte) {
			http.Error(w, "nenhuma fonte disponível; envie a planilha em /realizado/upload", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "erro ao carregar planilha", http.StatusInternalServerError)
		return
	}

	h.salvarEResponder(w, r, Processar(res.Linhas, ano, res.Fonte), usuarioID)
}

// Obter devolve a importação mais recente do ano (?ano=)
func (h *Handler) Obter(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	ano, err := h.anoDaRequisicao(r)
	if err != nil || ano == 0 {
		http.Error(w, "ano inválido", http.StatusBadRequest)
		return
	}

	imp, err := h.Repo.UltimaDoAno(r.Context(), usuarioID, ano)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "nenhuma importação para o ano", http.StatusNotFound)
			return
		}
		config.LogError(config.GetLogger(), "importacao", "Obter", "buscar importação", ano, err)
		http.Error(w, "erro ao buscar importação", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, montarResposta(*imp, h.MargemReferencia))
}

func (h *Handler) salvarEResponder(w http.ResponseWriter, r *http.Request, imp Importacao, usuarioID uint) {
	if imp.Ano == 0 {
		http.Error(w, "planilha sem notas datadas", http.StatusUnprocessableEntity)
		return
	}
	imp.UsuarioID = usuarioID
	if err := h.Repo.Salvar(r.Context(), &imp); err != nil {
		config.LogError(config.GetLogger(), "importacao", "salvarEResponder", "salvar", imp.Fonte, err)
		http.Error(w, "erro ao salvar importação", http.StatusInternalServerError)
		return
	}

	config.GetLogger().WithField("ano", imp.Ano).
		WithField("fonte", imp.Fonte).
		WithField("mesVigente", imp.MesVigente).
		Info("realizado importado")
	utils.ResponderJSON(w, http.StatusCreated, montarResposta(imp, h.MargemReferencia))
}

// ano vem de ?ano=; ausente usa o ano padrão da configuração
func (h *Handler) anoDaRequisicao(r *http.Request) (int, error) {
	s := r.URL.Query().Get("ano")
	if s == "" {
		return h.AnoPadrao, nil
	}
	ano, err := strconv.Atoi(s)
	if err != nil || ano < 1900 || ano > 9999 {
		return 0, errors.New("ano inválido")
	}
	return ano, nil
}
