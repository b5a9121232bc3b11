package relatorio

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// SemValor é exibido no lugar de valores ausentes ou inválidos
const SemValor = "—"

var nomesMeses = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// BRL formata no padrão "R$ 1.234.567,89", arredondando para centavos.
func BRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return SemValor
	}
	return "R$ " + numeroBR(decimalDe(v), 2)
}

// Pct formata uma fração como percentual: Pct(0.125, 2) == "12,50%".
func Pct(v float64, casas int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return SemValor
	}
	if casas < 0 {
		casas = 0
	}
	s := decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).StringFixed(int32(casas))
	return strings.Replace(s, ".", ",", 1) + "%"
}

// RotuloMes converte 202501 em "Jan/2025"
func RotuloMes(anoMes int) string {
	m := anoMes % 100
	if anoMes <= 0 || m < 1 || m > 12 {
		return SemValor
	}
	return fmt.Sprintf("%s/%d", nomesMeses[m-1], anoMes/100)
}

func numeroBR(d decimal.Decimal, casas int32) string {
	s := d.StringFixed(casas)
	sinal := ""
	if strings.HasPrefix(s, "-") {
		sinal, s = "-", s[1:]
	}

	inteiro, fracao, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	if fracao != "" {
		b.WriteByte(',')
		b.WriteString(fracao)
	}
	return sinal + b.String()
}

func decimalDe(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
