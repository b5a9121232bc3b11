package notas

import (
	"sort"
	"strings"
)

type campo int

const (
	campoData campo = iota
	campoValor
	campoTipoNota
	campoClassificacao
	campoNatureza
)

// apelidos conhecidos por campo, em ordem de prioridade (já sem acento e em minúsculas)
var apelidos = map[campo][]string{
	campoData:          {"data emissao", "data_emissao", "data"},
	campoValor:         {"valor total", "valor_total"},
	campoTipoNota:      {"tipo nota", "tipo_nota"},
	campoClassificacao: {"classificacao"},
	campoNatureza:      {"natureza operacao", "natureza_operacao"},
}

func chaveColuna(nome string) string {
	return strings.ToLower(NormalizarTexto(nome))
}

// resolverColunas mapeia cada campo para o cabeçalho original que o representa.
func resolverColunas(cabecalhos []string) map[campo]string {
	porChave := make(map[string]string, len(cabecalhos))
	for _, c := range cabecalhos {
		k := chaveColuna(c)
		if _, existe := porChave[k]; !existe {
			porChave[k] = c
		}
	}

	resolvidas := make(map[campo]string, len(apelidos))
	for f, nomes := range apelidos {
		for _, nome := range nomes {
			if original, ok := porChave[nome]; ok {
				resolvidas[f] = original
				break
			}
		}
	}
	return resolvidas
}

// Normalizar converte linhas cruas em notas canônicas. Colunas desconhecidas são descartadas
// e campos ausentes ficam vazios.
func Normalizar(linhas []Linha) []Nota {
	if len(linhas) == 0 {
		return []Nota{}
	}

	cabecalhos := map[string]struct{}{}
	for _, l := range linhas {
		for k := range l {
			cabecalhos[k] = struct{}{}
		}
	}
	lista := make([]string, 0, len(cabecalhos))
	for k := range cabecalhos {
		lista = append(lista, k)
	}
	// ordem estável para que cabeçalhos duplicados após normalização resolvam sempre igual
	sort.Strings(lista)
	colunas := resolverColunas(lista)

	notas := make([]Nota, 0, len(linhas))
	for _, l := range linhas {
		notas = append(notas, normalizarLinha(l, colunas))
	}
	return notas
}

func normalizarLinha(l Linha, colunas map[campo]string) Nota {
	valorDe := func(f campo) any {
		nome, ok := colunas[f]
		if !ok {
			return nil
		}
		return l[nome]
	}

	n := Nota{
		Classificacao:    NormalizarTexto(valorDe(campoClassificacao)),
		NaturezaOperacao: NormalizarTexto(valorDe(campoNatureza)),
		Valor:            ParseBRL(valorDe(campoValor)),
	}
	if n.Valor < 0 {
		n.Valor = 0
	}

	switch NormalizarTexto(valorDe(campoTipoNota)) {
	case "ENTRADA":
		n.Direcao = DirecaoEntrada
	case "SAIDA":
		n.Direcao = DirecaoSaida
	}

	if t, ok := ParseData(valorDe(campoData)); ok {
		n.Data = &t
		n.AnoMes = AnoMesDe(t)
	}
	return n
}
