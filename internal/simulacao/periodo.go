package simulacao

// EstadoMes é a política de edição de um mês em relação ao mês vigente.
type EstadoMes int

const (
	// mês anterior ao vigente: sempre travado no realizado
	EstadoTravadoRealizado EstadoMes = iota
	// mês vigente: travado, a menos que a simulação do mês vigente esteja ligada
	EstadoVigente
	// mês posterior ao vigente: sempre editável
	EstadoEditavelFuturo
)

func (e EstadoMes) String() string {
	switch e {
	case EstadoTravadoRealizado:
		return "travado"
	case EstadoVigente:
		return "vigente"
	default:
		return "editavel"
	}
}

// Estado classifica o mês. Sem mês vigente (0) todos os meses são futuros.
func Estado(anoMes, vigente int) EstadoMes {
	switch {
	case vigente == 0 || anoMes > vigente:
		return EstadoEditavelFuturo
	case anoMes == vigente:
		return EstadoVigente
	default:
		return EstadoTravadoRealizado
	}
}

// Editavel aplica a política: o flag só muda o mês vigente, nunca passados ou futuros.
func Editavel(anoMes, vigente int, simularVigente bool) bool {
	switch Estado(anoMes, vigente) {
	case EstadoEditavelFuturo:
		return true
	case EstadoVigente:
		return simularVigente
	default:
		return false
	}
}

// MesesSimulaveis lista os meses editáveis do ano, em ordem.
func MesesSimulaveis(ano, vigente int, simularVigente bool) []int {
	out := []int{}
	for m := 1; m <= 12; m++ {
		k := ano*100 + m
		if Editavel(k, vigente, simularVigente) {
			out = append(out, k)
		}
	}
	return out
}

// MesesTravados é o complemento de MesesSimulaveis
func MesesTravados(ano, vigente int, simularVigente bool) []int {
	out := []int{}
	for m := 1; m <= 12; m++ {
		k := ano*100 + m
		if !Editavel(k, vigente, simularVigente) {
			out = append(out, k)
		}
	}
	return out
}

// CombinarLAT monta o mapa plano {YYYYMM: LAT} que alimenta o cálculo trimestral:
// antes do vigente vale o realizado; no vigente, realizado mais o simulado quando a
// simulação do mês vigente está ligada; depois do vigente, o simulado.
func CombinarLAT(ano, vigente int, simularVigente bool, realizado, plano map[int]float64) map[int]float64 {
	out := make(map[int]float64, 12)
	for m := 1; m <= 12; m++ {
		k := ano*100 + m
		switch Estado(k, vigente) {
		case EstadoTravadoRealizado:
			out[k] = realizado[k]
		case EstadoVigente:
			lat := realizado[k]
			if simularVigente {
				lat += plano[k]
			}
			out[k] = lat
		default:
			out[k] = plano[k]
		}
	}
	return out
}
