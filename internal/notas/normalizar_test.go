package notas

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNormalizarResolveApelidos(t *testing.T) {
	linhas := []Linha{
		{
			"Data Emissão":      "10/02/2025",
			"TIPO NOTA":         "Saída",
			"Classificação":     "Veículo",
			"Natureza Operação": "Venda de mercadoria",
			"Valor Total":       "R$ 200.000,00",
			"Chassi":            "9BWZZZ377VT004251",
		},
		{
			"Data Emissão":      "11/02/2025",
			"TIPO NOTA":         "entrada",
			"Classificação":     "mercadoria para revenda",
			"Natureza Operação": "Compra para comercialização",
			"Valor Total":       "100.000,00",
		},
	}

	notas := Normalizar(linhas)
	require.Len(t, notas, 2)

	venda := notas[0]
	require.NotNil(t, venda.Data)
	assert.Equal(t, 202502, venda.AnoMes)
	assert.Equal(t, DirecaoSaida, venda.Direcao)
	assert.Equal(t, "VEICULO", venda.Classificacao)
	assert.Equal(t, "VENDA DE MERCADORIA", venda.NaturezaOperacao)
	assert.InDelta(t, 200000.0, venda.Valor, 1e-9)

	compra := notas[1]
	assert.True(t, compra.CompraParaRevenda())
	assert.False(t, compra.DevolucaoDeCompra())
	assert.InDelta(t, 100000.0, compra.Valor, 1e-9)
}

func TestNormalizarColunasAusentes(t *testing.T) {
	notas := Normalizar([]Linha{{"Outra": "x"}})
	require.Len(t, notas, 1)

	n := notas[0]
	assert.Nil(t, n.Data)
	assert.Equal(t, 0, n.AnoMes)
	assert.Equal(t, DirecaoDesconhecida, n.Direcao)
	assert.Equal(t, "", n.Classificacao)
	assert.Equal(t, 0.0, n.Valor)
}

func TestNormalizarDataInvalidaFicaSemMes(t *testing.T) {
	notas := Normalizar([]Linha{{"data": "sem data", "valor_total": "10,00", "tipo_nota": "SAIDA"}})
	require.Len(t, notas, 1)
	assert.Nil(t, notas[0].Data)
	assert.Equal(t, 0, notas[0].AnoMes)
	assert.InDelta(t, 10.0, notas[0].Valor, 1e-9)
}

func TestNormalizarValorNegativoViraZero(t *testing.T) {
	notas := Normalizar([]Linha{{"valor total": "-1.500,00"}})
	require.Len(t, notas, 1)
	assert.Equal(t, 0.0, notas[0].Valor)
}

func TestNormalizarPrioridadeDeApelidos(t *testing.T) {
	notas := Normalizar([]Linha{{"data": "01/01/2024", "data emissao": "05/06/2025"}})
	require.Len(t, notas, 1)
	assert.Equal(t, 202506, notas[0].AnoMes)
}

func TestNormalizarVazio(t *testing.T) {
	assert.Empty(t, Normalizar(nil))
}

func TestDevolucaoDeCompraPorSubstring(t *testing.T) {
	n := Nota{NaturezaOperacao: "5202 - DEVOLUCAO DE COMPRA PARA COMERCIALIZACAO", Direcao: DirecaoSaida}
	assert.True(t, n.DevolucaoDeCompra())
}

func TestUltimoAnoMes(t *testing.T) {
	assert.Equal(t, 0, UltimoAnoMes(nil))
	assert.Equal(t, 202507, UltimoAnoMes([]Nota{{AnoMes: 202501}, {AnoMes: 202507}, {AnoMes: 0}}))
}

func TestLerPlanilha(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	aba := f.GetSheetName(0)

	require.NoError(t, f.SetSheetRow(aba, "A2", &[]any{"Data Emissão", "Tipo Nota", "Classificação", "Valor Total"}))
	require.NoError(t, f.SetSheetRow(aba, "A3", &[]any{"15/01/2025", "SAIDA", "", 1500.5}))
	require.NoError(t, f.SetSheetRow(aba, "A4", &[]any{"20/01/2025", "ENTRADA", "Mercadoria para revenda", "1.000,00"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	linhas, err := LerPlanilha(&buf)
	require.NoError(t, err)
	require.Len(t, linhas, 2)

	notas := Normalizar(linhas)
	assert.Equal(t, 202501, notas[0].AnoMes)
	assert.InDelta(t, 1500.5, notas[0].Valor, 1e-9)
	assert.True(t, notas[1].CompraParaRevenda())
	assert.InDelta(t, 1000.0, notas[1].Valor, 1e-9)
}

func TestLerPlanilhaInvalida(t *testing.T) {
	_, err := LerPlanilha(bytes.NewBufferString("não é xlsx"))
	assert.Error(t, err)
}

func TestLinhasDeTabelaColunasCurtas(t *testing.T) {
	linhas := LinhasDeTabela([][]string{
		{},
		{"data", "valor_total"},
		{"01/02/2025"},
		{"", ""},
	})
	require.Len(t, linhas, 1)
	assert.Equal(t, "01/02/2025", linhas[0]["data"])
	assert.Nil(t, linhas[0]["valor_total"])
}
