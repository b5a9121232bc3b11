package simulacao

import "math"

// Cenario é o faturamento/compras/ICMS necessários para atingir um LAT numa margem.
type Cenario struct {
	Faturamento float64 `json:"faturamento"`
	Compras     float64 `json:"compras"`
	ICMS        float64 `json:"icms"`
}

// Cenarios projeta o LAT nas margens padrão, indexado pela margem em % (5, 10, ..., 30).
func Cenarios(lat float64) map[int]Cenario {
	return CenariosComMargens(lat, Margens)
}

// CenariosComMargens projeta o LAT em cada margem informada. LAT negativo é tratado como
// zero e margens não positivas não geram cenário. Os valores não são arredondados.
func CenariosComMargens(lat float64, margens []float64) map[int]Cenario {
	lat = naoNegativo(lat)
	out := make(map[int]Cenario, len(margens))
	for _, r := range margens {
		if !(r > 0) {
			continue
		}
		fat := lat / r
		compras := fat - lat
		out[ChaveMargem(r)] = Cenario{
			Faturamento: fat,
			Compras:     compras,
			ICMS:        AliquotaICMS * fat,
		}
	}
	return out
}

// ChaveMargem converte 0.15 em 15
func ChaveMargem(r float64) int {
	return int(math.Round(r * 100))
}

// CenarioReferencia devolve o cenário da margem pedida (em %), ou zero se ela não existir.
func CenarioReferencia(lat float64, margem int) Cenario {
	if margem <= 0 {
		return Cenario{}
	}
	return CenariosComMargens(lat, []float64{float64(margem) / 100})[margem]
}

func naoNegativo(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
