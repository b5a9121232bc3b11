package simulacao

import (
	"encoding/json"
	"net/http"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/utils"
	"github.com/gorilla/mux"
)

// Handler expõe o motor de cálculo sem estado
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegistrarRotas pendura as rotas em /simulacao
func (h *Handler) RegistrarRotas(r *mux.Router) {
	r.HandleFunc("/simulacao/cenarios", h.Cenarios).Methods("POST")
	r.HandleFunc("/simulacao/tributos", h.Tributos).Methods("POST")
	r.HandleFunc("/simulacao/trimestral", h.Trimestral).Methods("POST")
}

func (h *Handler) Cenarios(w http.ResponseWriter, r *http.Request) {
	var req LATRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	margens := req.Margens
	if len(margens) == 0 {
		margens = Margens
	}
	utils.ResponderJSON(w, http.StatusOK, CenariosComMargens(req.LAT, margens))
}

func (h *Handler) Tributos(w http.ResponseWriter, r *http.Request) {
	var req LATRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	utils.ResponderJSON(w, http.StatusOK, CalcMes(req.LAT))
}

func (h *Handler) Trimestral(w http.ResponseWriter, r *http.Request) {
	var req TrimestralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	for k := range req.LATPorMes {
		if m := k % 100; k < 100001 || m < 1 || m > 12 {
			http.Error(w, "Mês inválido, use YYYYMM", http.StatusBadRequest)
			return
		}
	}

	resp := TrimestralResponse{
		Tributos:  IRPJCSLLTrimestre(req.LATPorMes),
		Progresso: map[string]Progresso{},
	}
	for k := range req.LATPorMes {
		tri := TrimestreDe(k)
		if _, ok := resp.Progresso[tri]; ok {
			continue
		}
		p, t, f := ProgressoTrimestre(req.LATPorMes, tri)
		resp.Progresso[tri] = Progresso{Preenchidos: p, Total: t, Faltantes: f}
	}
	utils.ResponderJSON(w, http.StatusOK, resp)
}
