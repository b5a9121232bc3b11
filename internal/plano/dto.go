package plano

type CriarPlanoRequest struct {
	Ano              int `json:"ano"`
	MargemReferencia int `json:"margemReferencia"`
}

type AtualizarMesRequest struct {
	LAT float64 `json:"lat"`
	Obs string  `json:"obs"`
}

type SimularVigenteRequest struct {
	Simular bool `json:"simular"`
}

type PropagarRequest struct {
	AnoMes int `json:"anoMes"`
}

type MargemRequest struct {
	MargemReferencia int `json:"margemReferencia"`
}

type PropagarResponse struct {
	Alterados []int     `json:"alterados"`
	Simulacao Simulacao `json:"simulacao"`
}
