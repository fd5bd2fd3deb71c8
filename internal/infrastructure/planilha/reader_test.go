package planilha

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestLerLinhasCSV(t *testing.T) {
	r := NewReader()

	t.Run("separador ponto e virgula", func(t *testing.T) {
		csv := "CODIGO;DESCRICAO;MEDIDA\nP-1;Martelo;UN\nP-2;Alicate;\n"
		rows, err := r.LerLinhas("catalogo.csv", strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "P-1", rows[0]["CODIGO"])
		assert.Equal(t, "Martelo", rows[0]["DESCRICAO"])
		assert.Equal(t, "", rows[1]["MEDIDA"])
	})

	t.Run("separador virgula", func(t *testing.T) {
		csv := "CODIGO,DESCRICAO\nP-1,Martelo\n"
		rows, err := r.LerLinhas("catalogo.csv", strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Martelo", rows[0]["DESCRICAO"])
	})

	t.Run("latin-1 e decodificado", func(t *testing.T) {
		utf8CSV := "CODIGO;DESCRIÇÃO\nP-1;Parafuso de pressão\n"
		latin1, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(utf8CSV))
		require.NoError(t, err)

		rows, err := r.LerLinhas("catalogo.csv", bytes.NewReader(latin1))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Parafuso de pressão", rows[0]["DESCRIÇÃO"])
	})

	t.Run("linhas vazias sao descartadas", func(t *testing.T) {
		csv := "CODIGO;DESCRICAO\n;\nP-1;Martelo\n ; \n"
		rows, err := r.LerLinhas("catalogo.csv", strings.NewReader(csv))
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestLerLinhasXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{" CODIGO ", "DESCRICAO"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"P-1", "Martelo"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"P-2", "Alicate"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := NewReader().LerLinhas("planilha.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Cabeçalho chega aparado
	assert.Equal(t, "P-1", rows[0]["CODIGO"])
	assert.Equal(t, "Alicate", rows[1]["DESCRICAO"])
}

func TestLerLinhasXLSXComExtensaoXLS(t *testing.T) {
	// Alguns sistemas exportam xlsx com extensão .xls
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"CODIGO", "DESCRICAO"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"P-1", "Martelo"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := NewReader().LerLinhas("planilha.xls", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "P-1", rows[0]["CODIGO"])
}

func TestLerLinhasFormatoNaoSuportado(t *testing.T) {
	_, err := NewReader().LerLinhas("dados.txt", strings.NewReader("x"))
	assert.Error(t, err)
}
