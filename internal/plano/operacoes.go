package plano

import (
	"errors"
	"math"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/simulacao"
)

var (
	ErrMesTravado   = errors.New("mês travado no realizado")
	ErrLATNegativo  = errors.New("LAT não pode ser negativo")
	ErrMesForaDoAno = errors.New("mês fora do ano do plano")
	ErrMargem       = errors.New("margem de referência inválida")
)

// NovoPlano abre os 12 meses do ano. Meses anteriores ao vigente começam com o LAT
// realizado; os demais começam zerados.
func NovoPlano(ano int, meses map[int]realizado.Mes, vigente int) Plano {
	p := Plano{
		Ano:              ano,
		MesVigente:       vigente,
		MargemReferencia: simulacao.MargemReferencia,
		Meses:            make([]PlanoMes, 0, 12),
	}
	for _, k := range realizado.MesesDoAno(ano) {
		pm := PlanoMes{AnoMes: k}
		if simulacao.Estado(k, vigente) == simulacao.EstadoTravadoRealizado {
			pm.LAT = meses[k].LAT
		}
		p.Meses = append(p.Meses, pm)
	}
	return p
}

// Sincronizar aplica um realizado mais novo: atualiza o vigente e regrava os meses passados.
// Um mês futuro que vira vigente perde a projeção do mês inteiro, pois no vigente o plano
// guarda só o que soma ao realizado.
func (p *Plano) Sincronizar(meses map[int]realizado.Mes, vigente int) {
	anterior := p.MesVigente
	p.MesVigente = vigente
	for i := range p.Meses {
		m := &p.Meses[i]
		switch p.Estado(m.AnoMes) {
		case simulacao.EstadoTravadoRealizado:
			m.LAT = meses[m.AnoMes].LAT
		case simulacao.EstadoVigente:
			if simulacao.Estado(m.AnoMes, anterior) == simulacao.EstadoEditavelFuturo {
				m.LAT = 0
			}
		}
	}
}

func (p *Plano) Estado(anoMes int) simulacao.EstadoMes {
	return simulacao.Estado(anoMes, p.MesVigente)
}

func (p *Plano) Editavel(anoMes int) bool {
	return simulacao.Editavel(anoMes, p.MesVigente, p.SimularVigente)
}

func (p *Plano) mes(anoMes int) (*PlanoMes, error) {
	for i := range p.Meses {
		if p.Meses[i].AnoMes == anoMes {
			return &p.Meses[i], nil
		}
	}
	return nil, ErrMesForaDoAno
}

// AtualizarMes grava o LAT e a observação de um mês aberto
func (p *Plano) AtualizarMes(anoMes int, lat float64, obs string) error {
	m, err := p.mes(anoMes)
	if err != nil {
		return err
	}
	if !p.Editavel(anoMes) {
		return ErrMesTravado
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < 0 {
		return ErrLATNegativo
	}
	m.LAT = lat
	m.Obs = obs
	return nil
}

// Propagar copia o LAT de um mês para todos os meses abertos seguintes.
// Devolve os meses alterados.
func (p *Plano) Propagar(anoMes int) ([]int, error) {
	origem, err := p.mes(anoMes)
	if err != nil {
		return nil, err
	}
	alterados := []int{}
	for i := range p.Meses {
		m := &p.Meses[i]
		if m.AnoMes <= anoMes || !p.Editavel(m.AnoMes) {
			continue
		}
		m.LAT = origem.LAT
		alterados = append(alterados, m.AnoMes)
	}
	return alterados, nil
}

// Zerar limpa a simulação: do vigente em diante volta a zero, o passado volta ao realizado.
func (p *Plano) Zerar(meses map[int]realizado.Mes) {
	for i := range p.Meses {
		m := &p.Meses[i]
		if p.Estado(m.AnoMes) == simulacao.EstadoTravadoRealizado {
			m.LAT = meses[m.AnoMes].LAT
		} else {
			m.LAT = 0
		}
	}
}

// DefinirMargem troca o cenário de referência (em %)
func (p *Plano) DefinirMargem(margem int) error {
	if margem <= 0 || margem >= 100 {
		return ErrMargem
	}
	p.MargemReferencia = margem
	return nil
}

// LATPorMes devolve o LAT do plano indexado por YYYYMM
func (p *Plano) LATPorMes() map[int]float64 {
	out := make(map[int]float64, len(p.Meses))
	for _, m := range p.Meses {
		out[m.AnoMes] = m.LAT
	}
	return out
}
