package notas

import (
	"strings"
	"time"
)

// Linha é uma linha crua da planilha de notas, indexada pelo cabeçalho original.
type Linha map[string]any

// Direcao indica se a nota é de entrada ou de saída
type Direcao int

const (
	DirecaoDesconhecida Direcao = iota
	DirecaoEntrada
	DirecaoSaida
)

func (d Direcao) String() string {
	switch d {
	case DirecaoEntrada:
		return "ENTRADA"
	case DirecaoSaida:
		return "SAIDA"
	default:
		return "DESCONHECIDA"
	}
}

const (
	ClassificacaoRevenda    = "MERCADORIA PARA REVENDA"
	NaturezaDevolucaoCompra = "DEVOLUCAO DE COMPRA"
)

// Nota é a forma canônica de uma linha depois da normalização.
// Data nula implica AnoMes zero; essas notas ficam fora de qualquer consolidação mensal.
type Nota struct {
	Data             *time.Time
	AnoMes           int
	Direcao          Direcao
	Classificacao    string
	NaturezaOperacao string
	Valor            float64
}

// DevolucaoDeCompra vale para qualquer direção, pois a devolução é lançada como ajuste.
func (n Nota) DevolucaoDeCompra() bool {
	return strings.Contains(n.NaturezaOperacao, NaturezaDevolucaoCompra)
}

// CompraParaRevenda é uma entrada de mercadoria destinada à revenda
func (n Nota) CompraParaRevenda() bool {
	return n.Direcao == DirecaoEntrada && n.Classificacao == ClassificacaoRevenda
}

// UltimoAnoMes retorna o maior AnoMes presente, ou 0 quando nenhuma nota tem data.
func UltimoAnoMes(notas []Nota) int {
	ultimo := 0
	for _, n := range notas {
		if n.AnoMes > ultimo {
			ultimo = n.AnoMes
		}
	}
	return ultimo
}
