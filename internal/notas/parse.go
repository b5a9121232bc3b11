package notas

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var numeroRegex = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)

// ParseBRL converte um valor monetário brasileiro ("R$ 1.234,56") em float64.
// Nunca falha: entradas vazias, nulas ou ilegíveis viram 0.
func ParseBRL(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return finitoOuZero(x)
	case float32:
		return finitoOuZero(float64(x))
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case string:
		return parseTextoBRL(x)
	case fmt.Stringer:
		return parseTextoBRL(x.String())
	default:
		return 0
	}
}

func parseTextoBRL(texto string) float64 {
	s := strings.TrimSpace(texto)
	if s == "" || strings.ToUpper(s) == "NAN" {
		return 0
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	candidato := s
	if strings.Contains(candidato, ",") {
		// formato BR: '.' milhar, ',' decimal
		candidato = strings.ReplaceAll(candidato, ".", "")
		candidato = strings.ReplaceAll(candidato, ",", ".")
	}
	if f, err := strconv.ParseFloat(candidato, 64); err == nil {
		return finitoOuZero(f)
	}

	frag := numeroRegex.FindString(s)
	if frag == "" {
		return 0
	}
	frag = strings.ReplaceAll(frag, ".", "")
	frag = strings.ReplaceAll(frag, ",", ".")
	f, err := strconv.ParseFloat(frag, 64)
	if err != nil {
		return 0
	}
	return finitoOuZero(f)
}

func finitoOuZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// NormalizarTexto remove acentos, converte para maiúsculas e apara espaços.
func NormalizarTexto(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		s = fmt.Sprint(x)
	}

	t := transform.Chain(norm.NFKD, transform.RemoveFunc(func(r rune) bool {
		return r > unicode.MaxASCII
	}))
	resultado, _, err := transform.String(t, s)
	if err != nil {
		resultado = s
	}
	return strings.TrimSpace(strings.ToUpper(resultado))
}

var layoutsDiaPrimeiro = []string{
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006",
	"02-01-2006 15:04:05",
	"02.01.2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2/1/2006",
}

// ParseData interpreta datas no padrão brasileiro (dia primeiro), ISO e seriais do Excel.
func ParseData(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return x, true
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return *x, true
	case float64:
		return serialExcel(x)
	case int:
		return serialExcel(float64(x))
	case int64:
		return serialExcel(float64(x))
	case string:
		return parseTextoData(x)
	default:
		return parseTextoData(fmt.Sprint(x))
	}
}

func parseTextoData(texto string) (time.Time, bool) {
	s := strings.TrimSpace(texto)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layoutsDiaPrimeiro {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return serialExcel(f)
	}
	return time.Time{}, false
}

// base Excel serial -> 1899-12-30; aceita apenas a faixa de datas plausíveis (1954 a 2119)
func serialExcel(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || serial < 20000 || serial > 80000 {
		return time.Time{}, false
	}
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	dias := int(serial)
	frac := serial - float64(dias)
	t := base.AddDate(0, 0, dias).Add(time.Duration(frac * 24 * float64(time.Hour)))
	return t, true
}

// AnoMesDe devolve a chave YYYYMM de uma data
func AnoMesDe(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}
