package simulacao

// PisCofins calcula PIS (0,65%) e COFINS (3%) sobre o LAT do mês. ICMS fica de fora:
// ele depende do faturamento projetado de um cenário.
func PisCofins(lat float64) (pis, cofins float64) {
	lat = naoNegativo(lat)
	return AliquotaPIS * lat, AliquotaCOFINS * lat
}

// ResultadoMes reúne os tributos mensais e os cenários de um LAT
type ResultadoMes struct {
	LAT      float64         `json:"lat"`
	PIS      float64         `json:"pis"`
	COFINS   float64         `json:"cofins"`
	Cenarios map[int]Cenario `json:"cenarios"`
}

// CalcMes monta o resultado completo de um mês a partir do LAT
func CalcMes(lat float64) ResultadoMes {
	pis, cofins := PisCofins(lat)
	return ResultadoMes{
		LAT:      lat,
		PIS:      pis,
		COFINS:   cofins,
		Cenarios: Cenarios(lat),
	}
}
