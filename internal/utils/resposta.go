package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/gorilla/mux"
)

// ResponderJSON escreve v como JSON com o status informado
func ResponderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		config.LogError(config.GetLogger(), "utils", "ResponderJSON", "encode", nil, err)
	}
}

// VarInt lê uma variável de rota inteira (ex.: {id}, {anomes})
func VarInt(r *http.Request, nome string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[nome])
}
