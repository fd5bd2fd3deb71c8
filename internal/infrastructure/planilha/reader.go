// Package planilha lê e escreve planilhas tabulares: entrada .xlsx, .xls
// legado e .csv (separador ; ou , com fallback latin-1), saída .xlsx estilizada.
package planilha

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Reader converte arquivos tabulares em linhas chaveadas pelo cabeçalho.
type Reader struct{}

// NewReader constrói o leitor de planilhas.
func NewReader() *Reader { return &Reader{} }

// LerLinhas lê o arquivo e devolve uma linha por registro, chaveada pelos
// cabeçalhos da primeira linha (com espaços aparados). A extensão do nome
// decide o formato; linhas totalmente vazias são descartadas.
func (*Reader) LerLinhas(filename string, r io.Reader) ([]map[string]string, error) {
	var (
		cells [][]string
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		cells, err = lerXLSX(r)
	case ".xls":
		cells, err = lerXLS(r)
	case ".csv":
		cells, err = lerCSV(r)
	default:
		return nil, fmt.Errorf("formato de arquivo não suportado: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	return mapearPorCabecalho(cells), nil
}

func lerXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ler planilha: %w", err)
	}
	return rows, nil
}

func lerXLS(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		// Alguns sistemas exportam xlsx com extensão .xls
		if _, errX := excelize.OpenReader(bytes.NewReader(data)); errX == nil {
			return lerXLSX(bytes.NewReader(data))
		}
		return nil, fmt.Errorf("abrir xls: %w", err)
	}

	var cells [][]string
	for _, sheet := range workbook.GetSheets() {
		for _, row := range sheet.GetRows() {
			var linha []string
			for _, cell := range row.GetCols() {
				linha = append(linha, cell.GetString())
			}
			cells = append(cells, linha)
		}
		// Somente a primeira aba, como nos demais formatos
		break
	}
	return cells, nil
}

func lerCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// Exportações brasileiras costumam vir em latin-1
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err == nil {
			data = decoded
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffSeparator(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	cells, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler csv: %w", err)
	}
	return cells, nil
}

// sniffSeparator decide entre ";" (padrão de exportações BR) e ",".
func sniffSeparator(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.ContainsRune(line, ';') {
		return ';'
	}
	return ','
}

// mapearPorCabecalho usa a primeira linha não vazia como cabeçalho e devolve
// as demais como mapas cabeçalho → valor. Cabeçalhos vazios são ignorados.
func mapearPorCabecalho(cells [][]string) []map[string]string {
	var headers []string
	start := 0
	for i, row := range cells {
		if !linhaVazia(row) {
			headers = make([]string, len(row))
			for j, h := range row {
				headers[j] = strings.TrimSpace(h)
			}
			start = i + 1
			break
		}
	}
	if headers == nil {
		return nil
	}

	var out []map[string]string
	for _, row := range cells[start:] {
		if linhaVazia(row) {
			continue
		}
		m := make(map[string]string, len(headers))
		for j, h := range headers {
			if h == "" {
				continue
			}
			if j < len(row) {
				m[h] = strings.TrimSpace(row[j])
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}
	return out
}

func linhaVazia(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
