package realizado

import (
	"math/rand"
	"testing"
	"time"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/notas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nota(anoMes int, dir notas.Direcao, classificacao, natureza string, valor float64) notas.Nota {
	d := time.Date(anoMes/100, time.Month(anoMes%100), 10, 0, 0, 0, 0, time.UTC)
	return notas.Nota{
		Data:             &d,
		AnoMes:           anoMes,
		Direcao:          dir,
		Classificacao:    classificacao,
		NaturezaOperacao: natureza,
		Valor:            valor,
	}
}

func TestPorMesVendaECompraNoMesmoMes(t *testing.T) {
	lista := []notas.Nota{
		nota(202503, notas.DirecaoSaida, "", "VENDA", 200000),
		nota(202503, notas.DirecaoEntrada, notas.ClassificacaoRevenda, "COMPRA", 100000),
	}

	meses := PorMes(lista, 2025)
	require.Len(t, meses, 12)

	assert.Equal(t, Mes{Faturamento: 200000, Compras: 100000, LAT: 100000}, meses[202503])
	for _, k := range MesesDoAno(2025) {
		if k == 202503 {
			continue
		}
		assert.Equal(t, Mes{}, meses[k], "mês %d", k)
	}
}

func TestPorMesDevolucaoAbateCompras(t *testing.T) {
	lista := []notas.Nota{
		nota(202504, notas.DirecaoSaida, "", "VENDA", 50000),
		nota(202504, notas.DirecaoEntrada, notas.ClassificacaoRevenda, "COMPRA", 30000),
		// devolução de compra lançada como saída não conta como faturamento
		nota(202504, notas.DirecaoSaida, "", "DEVOLUCAO DE COMPRA", 10000),
		// consumo interno não entra em compras
		nota(202504, notas.DirecaoEntrada, "CONSUMO", "COMPRA", 7000),
	}

	m := PorMes(lista, 2025)[202504]
	assert.InDelta(t, 50000.0, m.Faturamento, 1e-9)
	assert.InDelta(t, 20000.0, m.Compras, 1e-9)
	assert.InDelta(t, 30000.0, m.LAT, 1e-9)
}

func TestPorMesComprasNegativas(t *testing.T) {
	lista := []notas.Nota{
		nota(202505, notas.DirecaoEntrada, "", "DEVOLUCAO DE COMPRA", 5000),
	}
	m := PorMes(lista, 2025)[202505]
	assert.InDelta(t, -5000.0, m.Compras, 1e-9)
	assert.InDelta(t, 5000.0, m.LAT, 1e-9)
}

func TestPorMesIgnoraSemDataEOutrosAnos(t *testing.T) {
	lista := []notas.Nota{
		{Direcao: notas.DirecaoSaida, Valor: 999},
		nota(202412, notas.DirecaoSaida, "", "VENDA", 1000),
	}
	for _, m := range PorMes(lista, 2025) {
		assert.Equal(t, Mes{}, m)
	}
}

func TestPorMesIndependeDaOrdem(t *testing.T) {
	var lista []notas.Nota
	for i := 0; i < 200; i++ {
		lista = append(lista,
			nota(202506, notas.DirecaoSaida, "", "VENDA", 0.1*float64(i+1)),
			nota(202506, notas.DirecaoEntrada, notas.ClassificacaoRevenda, "COMPRA", 0.07*float64(i+1)),
		)
	}
	esperado := PorMes(lista, 2025)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		embaralhada := append([]notas.Nota(nil), lista...)
		r.Shuffle(len(embaralhada), func(a, b int) { embaralhada[a], embaralhada[b] = embaralhada[b], embaralhada[a] })
		assert.Equal(t, esperado, PorMes(embaralhada, 2025))
	}
}

func TestMesVigente(t *testing.T) {
	meses := PorMes([]notas.Nota{
		nota(202501, notas.DirecaoSaida, "", "VENDA", 10),
		nota(202507, notas.DirecaoEntrada, notas.ClassificacaoRevenda, "COMPRA", 5),
	}, 2025)
	assert.Equal(t, 202507, MesVigente(meses))
	assert.Equal(t, 0, MesVigente(PorMes(nil, 2025)))
}

func TestAcumuladoELATPorMes(t *testing.T) {
	meses := map[int]Mes{
		202501: {Faturamento: 100, Compras: 60, LAT: 40},
		202502: {Faturamento: 200, Compras: 150, LAT: 50},
		202503: {Faturamento: 300, Compras: 100, LAT: 200},
	}

	ytd := Acumulado(meses, 202502)
	assert.Equal(t, Mes{Faturamento: 300, Compras: 210, LAT: 90}, ytd)

	lat := LATPorMes(meses)
	assert.Equal(t, map[int]float64{202501: 40, 202502: 50, 202503: 200}, lat)
}
