package notas

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LerPlanilha lê a primeira aba de um .xlsx. A primeira linha não vazia é o cabeçalho;
// os valores chegam crus (seriais de data e números sem formatação).
func LerPlanilha(r io.Reader) ([]Linha, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer f.Close()

	abas := f.GetSheetList()
	if len(abas) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}

	rows, err := f.GetRows(abas[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %q: %w", abas[0], err)
	}
	return LinhasDeTabela(rows), nil
}

// LinhasDeTabela converte uma tabela de strings (cabeçalho + dados) em Linhas.
func LinhasDeTabela(rows [][]string) []Linha {
	inicio := -1
	for i, row := range rows {
		if !linhaVazia(row) {
			inicio = i
			break
		}
	}
	if inicio < 0 {
		return []Linha{}
	}

	cabecalho := rows[inicio]
	linhas := make([]Linha, 0, len(rows)-inicio-1)
	for _, row := range rows[inicio+1:] {
		if linhaVazia(row) {
			continue
		}
		l := make(Linha, len(cabecalho))
		for j, nome := range cabecalho {
			nome = strings.TrimSpace(nome)
			if nome == "" {
				continue
			}
			if j < len(row) {
				l[nome] = row[j]
			} else {
				l[nome] = nil
			}
		}
		linhas = append(linhas, l)
	}
	return linhas
}

func linhaVazia(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
