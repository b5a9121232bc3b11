package relatorio

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/simulacao"
	"github.com/xuri/excelize/v2"
)

const abaSimulacao = "Simulacao"

var cabecalhoAnual = []string{"Mês", "LAT", "FAT", "COMPRAS", "ICMS", "PIS", "COFINS", "IRPJ", "CSLL"}

// TabelaXLSX gera a planilha anual. Valores saem como números, com formato de moeda.
func TabelaXLSX(linhas []simulacao.LinhaAnual) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", abaSimulacao); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}

	for i, h := range cabecalhoAnual {
		celula, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(abaSimulacao, celula, h); err != nil {
			return nil, fmt.Errorf("cabeçalho %s: %w", h, err)
		}
	}

	moeda, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(`"R$" #,##0.00`)})
	if err != nil {
		return nil, fmt.Errorf("estilo moeda: %w", err)
	}

	for i, l := range linhas {
		linha := i + 2
		valores := []any{RotuloMes(l.AnoMes), l.LAT, l.Faturamento, l.Compras, l.ICMS, l.PIS, l.COFINS, l.IRPJ, l.CSLL}
		celula, _ := excelize.CoordinatesToCellName(1, linha)
		if err := f.SetSheetRow(abaSimulacao, celula, &valores); err != nil {
			return nil, fmt.Errorf("linha %d: %w", l.AnoMes, err)
		}
	}

	if len(linhas) > 0 {
		ultima, _ := excelize.CoordinatesToCellName(len(cabecalhoAnual), len(linhas)+1)
		if err := f.SetCellStyle(abaSimulacao, "B2", ultima, moeda); err != nil {
			return nil, fmt.Errorf("aplicar estilo: %w", err)
		}
	}
	_ = f.SetColWidth(abaSimulacao, "A", "A", 12)
	_ = f.SetColWidth(abaSimulacao, "B", "I", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("gerar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ResumoMesCSV gera o resumo de um mês (Mês, LAT, PIS, COFINS) separado por ponto e vírgula.
func ResumoMesCSV(anoMes int, lat, pis, cofins float64) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	registros := [][]string{
		{"Mês", "LAT", "PIS", "COFINS"},
		{RotuloMes(anoMes), numeroBR(decimalDe(lat), 2), numeroBR(decimalDe(pis), 2), numeroBR(decimalDe(cofins), 2)},
	}
	if err := w.WriteAll(registros); err != nil {
		return nil, fmt.Errorf("gerar csv: %w", err)
	}
	return buf.Bytes(), nil
}

func strPtr(s string) *string { return &s }
