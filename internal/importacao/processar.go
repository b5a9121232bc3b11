package importacao

import (
	"github.com/eduardoveiculos/simulacao-faturamento/internal/notas"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
)

// Processar normaliza as linhas da planilha, consolida o ano e descobre o mês vigente.
// Com ano 0 o ano é o da nota mais recente; sem nenhuma data a importação fica sem meses.
func Processar(linhas []notas.Linha, ano int, fonte string) Importacao {
	lista := notas.Normalizar(linhas)
	if ano == 0 {
		ano = notas.UltimoAnoMes(lista) / 100
	}

	imp := Importacao{Ano: ano, Fonte: fonte, Meses: []RealizadoMes{}}
	if ano == 0 {
		return imp
	}

	for _, n := range lista {
		if n.AnoMes/100 == ano {
			imp.QtdNotas++
		}
	}

	meses := realizado.PorMes(lista, ano)
	imp.MesVigente = realizado.MesVigente(meses)
	imp.Meses = linhasDeMeses(meses)
	return imp
}
