package simulacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstado(t *testing.T) {
	assert.Equal(t, EstadoTravadoRealizado, Estado(202502, 202504))
	assert.Equal(t, EstadoVigente, Estado(202504, 202504))
	assert.Equal(t, EstadoEditavelFuturo, Estado(202505, 202504))
	assert.Equal(t, EstadoEditavelFuturo, Estado(202501, 0))
	assert.Equal(t, "vigente", EstadoVigente.String())
}

func TestEditavelSoOVigenteDependeDoFlag(t *testing.T) {
	for _, simular := range []bool{false, true} {
		assert.False(t, Editavel(202503, 202504, simular))
		assert.True(t, Editavel(202505, 202504, simular))
	}
	assert.False(t, Editavel(202504, 202504, false))
	assert.True(t, Editavel(202504, 202504, true))
}

func TestMesesSimulaveis(t *testing.T) {
	assert.Equal(t, []int{202511, 202512}, MesesSimulaveis(2025, 202510, false))
	assert.Equal(t, []int{202510, 202511, 202512}, MesesSimulaveis(2025, 202510, true))
	assert.Empty(t, MesesSimulaveis(2025, 202512, false))
	assert.Len(t, MesesSimulaveis(2025, 0, false), 12)

	travados := MesesTravados(2025, 202510, false)
	assert.Len(t, travados, 10)
	assert.Equal(t, 202510, travados[len(travados)-1])
}

func TestCombinarLAT(t *testing.T) {
	realizado := map[int]float64{202501: 100, 202502: 200, 202503: 50}
	plano := map[int]float64{202501: 999, 202503: 25, 202504: 400}

	sem := CombinarLAT(2025, 202503, false, realizado, plano)
	assert.Len(t, sem, 12)
	assert.Equal(t, 100.0, sem[202501])
	assert.Equal(t, 50.0, sem[202503])
	assert.Equal(t, 400.0, sem[202504])
	assert.Zero(t, sem[202505])

	com := CombinarLAT(2025, 202503, true, realizado, plano)
	assert.Equal(t, 75.0, com[202503])
	assert.Equal(t, 100.0, com[202501])

	semVigente := CombinarLAT(2025, 0, false, realizado, plano)
	assert.Equal(t, 999.0, semVigente[202501])
}
