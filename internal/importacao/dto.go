package importacao

import (
	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/simulacao"
	"github.com/google/uuid"
)

// ImportacaoResponse é a importação com os indicadores do ano até o mês vigente
type ImportacaoResponse struct {
	ID         uuid.UUID             `json:"id"`
	Ano        int                   `json:"ano"`
	Fonte      string                `json:"fonte"`
	MesVigente int                   `json:"mesVigente"`
	QtdNotas   int                   `json:"qtdNotas"`
	Meses      map[int]realizado.Mes `json:"meses"`
	Resumo     simulacao.Resumo      `json:"resumo"`
}

func montarResposta(imp Importacao, margemRef int) ImportacaoResponse {
	meses := imp.PorMes()
	return ImportacaoResponse{
		ID:         imp.ID,
		Ano:        imp.Ano,
		Fonte:      imp.Fonte,
		MesVigente: imp.MesVigente,
		QtdNotas:   imp.QtdNotas,
		Meses:      meses,
		Resumo:     simulacao.ResumoAcumulado(meses, imp.MesVigente, margemRef),
	}
}
