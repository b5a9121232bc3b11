package simulacao

import (
	"testing"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabelaAnual(t *testing.T) {
	lat := map[int]float64{202501: 50000, 202502: 50000, 202503: 50000, 202504: 389800}
	linhas := TabelaAnual(2025, lat, 20)

	require.Len(t, linhas, 12)
	assert.Equal(t, 202501, linhas[0].AnoMes)
	assert.Equal(t, 202512, linhas[11].AnoMes)

	assert.False(t, linhas[0].Apurado)
	assert.Zero(t, linhas[0].IRPJ)
	assert.True(t, linhas[2].Apurado)
	assert.InDelta(t, 7200.0, linhas[2].IRPJ, 1e-6)
	assert.InDelta(t, 4320.0, linhas[2].CSLL, 1e-6)

	abr := linhas[3]
	assert.InDelta(t, 1949000.0, abr.Faturamento, 1e-6)
	assert.InDelta(t, 1559200.0, abr.Compras, 1e-6)
	assert.InDelta(t, 97450.0, abr.ICMS, 1e-6)
	assert.InDelta(t, 0.0065*389800, abr.PIS, 1e-6)
	assert.True(t, linhas[5].Apurado)

	assert.False(t, linhas[8].Apurado)
}

func TestResumoAcumulado(t *testing.T) {
	meses := map[int]realizado.Mes{
		202501: {Faturamento: 250000, Compras: 200000, LAT: 50000},
		202502: {Faturamento: 250000, Compras: 200000, LAT: 50000},
		202503: {Faturamento: 250000, Compras: 200000, LAT: 50000},
		202504: {Faturamento: 100000, Compras: 0, LAT: 100000},
		202505: {Faturamento: 999999, Compras: 0, LAT: 999999},
	}

	r := ResumoAcumulado(meses, 202504, 20)
	assert.Equal(t, 202504, r.Ate)
	assert.InDelta(t, 850000.0, r.Saidas, 1e-6)
	assert.InDelta(t, 600000.0, r.Entradas, 1e-6)
	assert.InDelta(t, 250000.0, r.LAT, 1e-6)
	assert.InDelta(t, 0.0065*250000, r.PIS, 1e-6)
	assert.InDelta(t, 0.03*250000, r.COFINS, 1e-6)
	// ICMS a 20%: FAT = LAT/0,2 e ICMS = 5% disso
	assert.InDelta(t, 0.05*250000/0.2, r.ICMS, 1e-6)
	// só o primeiro trimestre está fechado
	assert.InDelta(t, 7200.0, r.IRPJ, 1e-6)
	assert.InDelta(t, 4320.0, r.CSLL, 1e-6)
	assert.InDelta(t, r.LAT-(r.PIS+r.COFINS+r.ICMS+r.IRPJ+r.CSLL), r.LucroLiquido, 1e-6)
}

func TestResumoAcumuladoSemVigente(t *testing.T) {
	assert.Equal(t, Resumo{}, ResumoAcumulado(map[int]realizado.Mes{}, 0, 20))
}
