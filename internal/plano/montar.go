package plano

import (
	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/simulacao"
)

// MesPlano é o mês como aparece na grade de edição
type MesPlano struct {
	AnoMes   int     `json:"anoMes"`
	Estado   string  `json:"estado"`
	Editavel bool    `json:"editavel"`
	LAT      float64 `json:"lat"`
	Obs      string  `json:"obs"`
}

// Vigente separa o LAT do mês vigente em realizado e simulado
type Vigente struct {
	AnoMes    int     `json:"anoMes"`
	Realizado float64 `json:"realizado"`
	Simulado  float64 `json:"simulado"`
	Total     float64 `json:"total"`
}

// Simulacao é a visão completa do plano sobre o realizado
type Simulacao struct {
	PlanoID          uint                                `json:"planoId"`
	Ano              int                                 `json:"ano"`
	MesVigente       int                                 `json:"mesVigente"`
	SimularVigente   bool                                `json:"simularVigente"`
	MargemReferencia int                                 `json:"margemReferencia"`
	Meses            []MesPlano                          `json:"meses"`
	Simulaveis       []int                               `json:"simulaveis"`
	Travados         []int                               `json:"travados"`
	LAT              map[int]float64                     `json:"lat"`
	Tabela           []simulacao.LinhaAnual              `json:"tabela"`
	Trimestral       map[int]simulacao.TributoTrimestral `json:"trimestral"`
	Resumo           simulacao.Resumo                    `json:"resumo"`
	Vigente          *Vigente                            `json:"vigente,omitempty"`
}

// DetalheMes é a simulação de um único mês numa margem escolhida
type DetalheMes struct {
	AnoMes     int                          `json:"anoMes"`
	Estado     string                       `json:"estado"`
	LAT        float64                      `json:"lat"`
	Margem     int                          `json:"margem"`
	Referencia simulacao.Cenario            `json:"referencia"`
	Cenarios   map[int]simulacao.Cenario    `json:"cenarios"`
	PIS        float64                      `json:"pis"`
	COFINS     float64                      `json:"cofins"`
	Trimestre  *simulacao.TributoTrimestral `json:"trimestre,omitempty"`
	Vigente    *Vigente                     `json:"vigente,omitempty"`
}

func latCombinado(p *Plano, meses map[int]realizado.Mes) map[int]float64 {
	return simulacao.CombinarLAT(p.Ano, p.MesVigente, p.SimularVigente, realizado.LATPorMes(meses), p.LATPorMes())
}

func detalheVigente(p *Plano, meses map[int]realizado.Mes) *Vigente {
	if p.MesVigente == 0 || !p.SimularVigente {
		return nil
	}
	feito := meses[p.MesVigente].LAT
	sim := p.LATPorMes()[p.MesVigente]
	return &Vigente{AnoMes: p.MesVigente, Realizado: feito, Simulado: sim, Total: feito + sim}
}

// Montar calcula a tabela anual, os tributos trimestrais e os indicadores acumulados
func Montar(p *Plano, meses map[int]realizado.Mes) Simulacao {
	lat := latCombinado(p, meses)

	grade := make([]MesPlano, 0, len(p.Meses))
	for _, m := range p.Meses {
		mp := MesPlano{
			AnoMes:   m.AnoMes,
			Estado:   p.Estado(m.AnoMes).String(),
			Editavel: p.Editavel(m.AnoMes),
			LAT:      m.LAT,
			Obs:      m.Obs,
		}
		// vigente travado mostra o realizado, como os meses passados
		if p.Estado(m.AnoMes) == simulacao.EstadoVigente && !p.SimularVigente {
			mp.LAT = meses[m.AnoMes].LAT
		}
		grade = append(grade, mp)
	}

	return Simulacao{
		PlanoID:          p.ID,
		Ano:              p.Ano,
		MesVigente:       p.MesVigente,
		SimularVigente:   p.SimularVigente,
		MargemReferencia: p.MargemReferencia,
		Meses:            grade,
		Simulaveis:       simulacao.MesesSimulaveis(p.Ano, p.MesVigente, p.SimularVigente),
		Travados:         simulacao.MesesTravados(p.Ano, p.MesVigente, p.SimularVigente),
		LAT:              lat,
		Tabela:           simulacao.TabelaAnual(p.Ano, lat, p.MargemReferencia),
		Trimestral:       simulacao.IRPJCSLLTrimestre(lat),
		Resumo:           simulacao.ResumoAcumulado(meses, p.MesVigente, p.MargemReferencia),
		Vigente:          detalheVigente(p, meses),
	}
}

// Detalhar simula um mês do plano; margem 0 usa a margem de referência do plano
func Detalhar(p *Plano, meses map[int]realizado.Mes, anoMes, margem int) (DetalheMes, error) {
	if _, err := p.mes(anoMes); err != nil {
		return DetalheMes{}, err
	}
	if margem == 0 {
		margem = p.MargemReferencia
	}
	if margem < 0 || margem >= 100 {
		return DetalheMes{}, ErrMargem
	}

	combinado := latCombinado(p, meses)
	lat := combinado[anoMes]
	pis, cofins := simulacao.PisCofins(lat)

	d := DetalheMes{
		AnoMes:     anoMes,
		Estado:     p.Estado(anoMes).String(),
		LAT:        lat,
		Margem:     margem,
		Referencia: simulacao.CenarioReferencia(lat, margem),
		Cenarios:   simulacao.Cenarios(lat),
		PIS:        pis,
		COFINS:     cofins,
	}
	if t, ok := simulacao.IRPJCSLLTrimestre(combinado)[anoMes]; ok {
		d.Trimestre = &t
	}
	if anoMes == p.MesVigente {
		d.Vigente = detalheVigente(p, meses)
	}
	return d, nil
}
