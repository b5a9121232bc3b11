package simulacao

// LATRequest é o corpo de /simulacao/cenarios e /simulacao/tributos
type LATRequest struct {
	LAT     float64   `json:"lat"`
	Margens []float64 `json:"margens,omitempty"`
}

// TrimestralRequest recebe o LAT por mês; as chaves JSON são "202501", "202502", ...
type TrimestralRequest struct {
	LATPorMes map[int]float64 `json:"latPorMes"`
}

// TrimestralResponse devolve o IRPJ/CSLL por mês de fechamento e o progresso de cada trimestre
type TrimestralResponse struct {
	Tributos  map[int]TributoTrimestral `json:"tributos"`
	Progresso map[string]Progresso      `json:"progresso"`
}

type Progresso struct {
	Preenchidos int   `json:"preenchidos"`
	Total       int   `json:"total"`
	Faltantes   []int `json:"faltantes"`
}
