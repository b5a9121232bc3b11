package realizado

import (
	"github.com/eduardoveiculos/simulacao-faturamento/internal/notas"
	"github.com/shopspring/decimal"
)

// Mes consolida o realizado de um mês: FAT, COMPRAS e LAT = FAT - COMPRAS.
// Compras podem ficar negativas quando as devoluções superam as entradas do mês.
type Mes struct {
	Faturamento float64 `json:"faturamento"`
	Compras     float64 `json:"compras"`
	LAT         float64 `json:"lat"`
}

type acumulador struct {
	faturamento decimal.Decimal
	compras     decimal.Decimal
	devolucoes  decimal.Decimal
}

// MesesDoAno devolve as 12 chaves YYYYMM do ano, em ordem
func MesesDoAno(ano int) []int {
	meses := make([]int, 12)
	for m := 1; m <= 12; m++ {
		meses[m-1] = ano*100 + m
	}
	return meses
}

// PorMes consolida as notas do ano informado em um mapa denso de 12 meses.
// A soma é feita em decimal, então a ordem das notas não altera o resultado.
func PorMes(lista []notas.Nota, ano int) map[int]Mes {
	acc := make(map[int]*acumulador, 12)
	for _, k := range MesesDoAno(ano) {
		acc[k] = &acumulador{}
	}

	for _, n := range lista {
		if n.AnoMes == 0 || n.AnoMes/100 != ano {
			continue
		}
		a, ok := acc[n.AnoMes]
		if !ok {
			continue
		}
		valor := decimal.NewFromFloat(n.Valor)
		devolucao := n.DevolucaoDeCompra()

		if n.Direcao == notas.DirecaoSaida && !devolucao {
			a.faturamento = a.faturamento.Add(valor)
		}
		if n.CompraParaRevenda() {
			a.compras = a.compras.Add(valor)
		}
		if devolucao {
			a.devolucoes = a.devolucoes.Add(valor)
		}
	}

	out := make(map[int]Mes, 12)
	for k, a := range acc {
		compras := a.compras.Sub(a.devolucoes)
		out[k] = Mes{
			Faturamento: a.faturamento.InexactFloat64(),
			Compras:     compras.InexactFloat64(),
			LAT:         a.faturamento.Sub(compras).InexactFloat64(),
		}
	}
	return out
}

// MesVigente é o último mês com faturamento ou compras realizados; 0 quando não há nenhum.
func MesVigente(meses map[int]Mes) int {
	vigente := 0
	for k, m := range meses {
		if (m.Faturamento != 0 || m.Compras != 0) && k > vigente {
			vigente = k
		}
	}
	return vigente
}

// LATPorMes extrai o LAT de cada mês
func LATPorMes(meses map[int]Mes) map[int]float64 {
	out := make(map[int]float64, len(meses))
	for k, m := range meses {
		out[k] = m.LAT
	}
	return out
}

// Acumulado soma os meses até `ate` (inclusive), como nos indicadores do ano.
func Acumulado(meses map[int]Mes, ate int) Mes {
	var fat, comp, lat decimal.Decimal
	for k, m := range meses {
		if k > ate {
			continue
		}
		fat = fat.Add(decimal.NewFromFloat(m.Faturamento))
		comp = comp.Add(decimal.NewFromFloat(m.Compras))
		lat = lat.Add(decimal.NewFromFloat(m.LAT))
	}
	return Mes{
		Faturamento: fat.InexactFloat64(),
		Compras:     comp.InexactFloat64(),
		LAT:         lat.InexactFloat64(),
	}
}
