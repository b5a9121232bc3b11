package simulacao

import (
	"sort"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
)

// LinhaAnual é uma linha da tabela anual. FAT, COMPRAS e ICMS vêm do cenário da margem
// de referência; IRPJ e CSLL só aparecem nos meses de fechamento com base positiva.
type LinhaAnual struct {
	AnoMes      int     `json:"anoMes"`
	LAT         float64 `json:"lat"`
	Faturamento float64 `json:"faturamento"`
	Compras     float64 `json:"compras"`
	ICMS        float64 `json:"icms"`
	PIS         float64 `json:"pis"`
	COFINS      float64 `json:"cofins"`
	IRPJ        float64 `json:"irpj"`
	CSLL        float64 `json:"csll"`
	Apurado     bool    `json:"apurado"`
}

// TabelaAnual monta as 12 linhas do ano a partir do LAT combinado.
func TabelaAnual(ano int, latPorMes map[int]float64, margemRef int) []LinhaAnual {
	trimestral := IRPJCSLLTrimestre(latPorMes)

	linhas := make([]LinhaAnual, 0, 12)
	for m := 1; m <= 12; m++ {
		k := ano*100 + m
		lat := latPorMes[k]
		pis, cofins := PisCofins(lat)
		c := CenarioReferencia(lat, margemRef)

		l := LinhaAnual{
			AnoMes:      k,
			LAT:         lat,
			Faturamento: c.Faturamento,
			Compras:     c.Compras,
			ICMS:        c.ICMS,
			PIS:         pis,
			COFINS:      cofins,
		}
		if t, ok := trimestral[k]; ok {
			l.IRPJ = t.IRPJ
			l.CSLL = t.CSLL
			l.Apurado = true
		}
		linhas = append(linhas, l)
	}
	return linhas
}

// Resumo são os indicadores acumulados do ano até o mês vigente.
type Resumo struct {
	Ate          int     `json:"ate"`
	Entradas     float64 `json:"entradas"`
	Saidas       float64 `json:"saidas"`
	LAT          float64 `json:"lat"`
	PIS          float64 `json:"pis"`
	COFINS       float64 `json:"cofins"`
	ICMS         float64 `json:"icms"`
	IRPJ         float64 `json:"irpj"`
	CSLL         float64 `json:"csll"`
	LucroLiquido float64 `json:"lucroLiquido"`
}

// ResumoAcumulado soma o realizado até o vigente. IRPJ/CSLL entram só para trimestres
// cujo mês de fechamento já passou (ou é o próprio vigente).
func ResumoAcumulado(meses map[int]realizado.Mes, vigente int, margemRef int) Resumo {
	r := Resumo{Ate: vigente}
	if vigente == 0 {
		return r
	}

	acc := realizado.Acumulado(meses, vigente)
	r.Entradas = acc.Compras
	r.Saidas = acc.Faturamento
	r.LAT = acc.LAT

	chaves := make([]int, 0, len(meses))
	for k := range meses {
		if k <= vigente {
			chaves = append(chaves, k)
		}
	}
	sort.Ints(chaves)

	lat := make(map[int]float64, len(chaves))
	for _, k := range chaves {
		m := meses[k]
		lat[k] = m.LAT
		pis, cofins := PisCofins(m.LAT)
		r.PIS += pis
		r.COFINS += cofins
		r.ICMS += CenarioReferencia(m.LAT, margemRef).ICMS
	}

	for k, t := range IRPJCSLLTrimestre(lat) {
		if k > vigente {
			continue
		}
		r.IRPJ += t.IRPJ
		r.CSLL += t.CSLL
	}

	r.LucroLiquido = r.LAT - (r.PIS + r.COFINS + r.ICMS + r.IRPJ + r.CSLL)
	return r
}
