package simulacao

import (
	"fmt"
	"sort"
)

// TributoTrimestral é o IRPJ/CSLL de um trimestre, lançado no mês de fechamento.
type TributoTrimestral struct {
	BasePresumida float64 `json:"basePresumida"`
	IRPJ          float64 `json:"irpj"`
	CSLL          float64 `json:"csll"`
}

// IRPJCSLLTrimestre apura IRPJ e CSLL por trimestre civil a partir de {YYYYMM: LAT}.
//
// A base é 32% do LAT somado no trimestre (meses ausentes contam zero). Trimestres com base
// não positiva não geram chave: ausência significa "nada a recolher ainda", não zero.
// O adicional de 10% incide sobre a base que excede 60.000 no trimestre inteiro.
// O resultado é indexado apenas pelo mês de fechamento (mar, jun, set, dez).
func IRPJCSLLTrimestre(latPorMes map[int]float64) map[int]TributoTrimestral {
	out := map[int]TributoTrimestral{}
	if len(latPorMes) == 0 {
		return out
	}

	for _, ano := range anosPresentes(latPorMes) {
		for tri := 1; tri <= 4; tri++ {
			meses := mesesDoTrimestre(ano, tri)

			base := 0.0
			for _, k := range meses {
				base += PercentualPresuncao * latPorMes[k]
			}
			base = naoNegativo(base)
			if base == 0 {
				continue
			}

			irpj := AliquotaIRPJ * base
			if base > LimiteAdicional {
				irpj += AliquotaAdicional * (base - LimiteAdicional)
			}

			out[meses[2]] = TributoTrimestral{
				BasePresumida: base,
				IRPJ:          irpj,
				CSLL:          AliquotaCSLL * base,
			}
		}
	}
	return out
}

func anosPresentes(latPorMes map[int]float64) []int {
	vistos := map[int]struct{}{}
	for k := range latPorMes {
		vistos[k/100] = struct{}{}
	}
	anos := make([]int, 0, len(vistos))
	for a := range vistos {
		anos = append(anos, a)
	}
	sort.Ints(anos)
	return anos
}

func mesesDoTrimestre(ano, tri int) []int {
	primeiro := (tri-1)*3 + 1
	return []int{ano*100 + primeiro, ano*100 + primeiro + 1, ano*100 + primeiro + 2}
}

func trimestreDoMes(mes int) int {
	return (mes-1)/3 + 1
}

// TrimestreDe devolve o rótulo "2025Q1" do mês YYYYMM
func TrimestreDe(anoMes int) string {
	return fmt.Sprintf("%dQ%d", anoMes/100, trimestreDoMes(anoMes%100))
}

// MesFechamento devolve o último mês (YYYYMM) do trimestre que contém anoMes
func MesFechamento(anoMes int) int {
	return (anoMes/100)*100 + trimestreDoMes(anoMes%100)*3
}

// EhFechamento indica se o mês é março, junho, setembro ou dezembro
func EhFechamento(anoMes int) bool {
	return anoMes%100%3 == 0 && anoMes%100 >= 3 && anoMes%100 <= 12
}

// MesesDoTrimestre interpreta "2025Q3" e devolve os três meses; nil se o rótulo for inválido.
func MesesDoTrimestre(trimestre string) []int {
	var ano, tri int
	if _, err := fmt.Sscanf(trimestre, "%dQ%d", &ano, &tri); err != nil || tri < 1 || tri > 4 {
		return nil
	}
	return mesesDoTrimestre(ano, tri)
}

// ProgressoTrimestre conta quantos meses do trimestre já têm LAT informado.
func ProgressoTrimestre(latPorMes map[int]float64, trimestre string) (preenchidos, total int, faltantes []int) {
	meses := MesesDoTrimestre(trimestre)
	faltantes = []int{}
	for _, k := range meses {
		if _, ok := latPorMes[k]; ok {
			preenchidos++
		} else {
			faltantes = append(faltantes, k)
		}
	}
	return preenchidos, len(meses), faltantes
}
