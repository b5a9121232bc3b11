package plano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontar(t *testing.T) {
	meses := realizadoExemplo()
	p := NovoPlano(2025, meses, 202503)
	require.NoError(t, p.AtualizarMes(202504, 100000, ""))
	require.NoError(t, p.AtualizarMes(202505, 100000, ""))
	require.NoError(t, p.AtualizarMes(202506, 100000, ""))

	s := Montar(&p, meses)
	assert.Equal(t, 202503, s.MesVigente)
	require.Len(t, s.Meses, 12)
	assert.Equal(t, "travado", s.Meses[0].Estado)
	assert.Equal(t, "vigente", s.Meses[2].Estado)
	assert.False(t, s.Meses[2].Editavel)
	assert.Equal(t, 20000.0, s.Meses[2].LAT)
	assert.True(t, s.Meses[3].Editavel)
	assert.Equal(t, []int{202501, 202502, 202503}, s.Travados)
	assert.Len(t, s.Simulaveis, 9)
	assert.Equal(t, 202504, s.Simulaveis[0])

	assert.Equal(t, 20000.0, s.LAT[202503])
	assert.Equal(t, 100000.0, s.LAT[202504])

	// Q1: (50000+50000+20000)*0,32 = 38400
	require.Contains(t, s.Trimestral, 202503)
	assert.InDelta(t, 5760.0, s.Trimestral[202503].IRPJ, 1e-6)
	// Q2: 300000*0,32 = 96000 -> 14400 + 3600
	assert.InDelta(t, 18000.0, s.Trimestral[202506].IRPJ, 1e-6)
	assert.NotContains(t, s.Trimestral, 202509)

	require.Len(t, s.Tabela, 12)
	assert.True(t, s.Tabela[5].Apurado)
	assert.InDelta(t, 120000.0, s.Resumo.LAT, 1e-6)
	assert.Nil(t, s.Vigente)
}

func TestMontarSimulandoVigente(t *testing.T) {
	meses := realizadoExemplo()
	p := NovoPlano(2025, meses, 202503)
	p.SimularVigente = true
	require.NoError(t, p.AtualizarMes(202503, 15000, ""))

	s := Montar(&p, meses)
	assert.Equal(t, 35000.0, s.LAT[202503])
	assert.Equal(t, 15000.0, s.Meses[2].LAT)
	assert.Equal(t, []int{202501, 202502}, s.Travados)
	require.NotNil(t, s.Vigente)
	assert.Equal(t, 20000.0, s.Vigente.Realizado)
	assert.Equal(t, 15000.0, s.Vigente.Simulado)
	assert.Equal(t, 35000.0, s.Vigente.Total)
}

func TestDetalhar(t *testing.T) {
	meses := realizadoExemplo()
	p := NovoPlano(2025, meses, 202503)
	require.NoError(t, p.AtualizarMes(202504, 389800, ""))

	d, err := Detalhar(&p, meses, 202504, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, d.Margem)
	assert.InDelta(t, 1949000.0, d.Referencia.Faturamento, 1e-6)
	assert.InDelta(t, 1559200.0, d.Referencia.Compras, 1e-6)
	assert.InDelta(t, 97450.0, d.Referencia.ICMS, 1e-6)
	assert.Len(t, d.Cenarios, 6)
	assert.Nil(t, d.Trimestre)

	d, err = Detalhar(&p, meses, 202506, 10)
	require.NoError(t, err)
	require.NotNil(t, d.Trimestre)
	assert.Zero(t, d.LAT)

	d, err = Detalhar(&p, meses, 202501, 0)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, d.LAT)
	assert.Equal(t, "travado", d.Estado)

	_, err = Detalhar(&p, meses, 202601, 0)
	assert.ErrorIs(t, err, ErrMesForaDoAno)
	_, err = Detalhar(&p, meses, 202501, 150)
	assert.ErrorIs(t, err, ErrMargem)
}
