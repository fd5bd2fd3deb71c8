// Package dateconv converte datas entre o formato de exibição brasileiro
// (DD/MM/AAAA) e o formato de armazenamento ISO (AAAA-MM-DD).
//
// As datas são valores de calendário puros, nunca instantes: não há fuso
// horário nem validação de calendário (31/02/2024 é aceito e codificado como
// 2024-02-31). Entrada vazia ou malformada devolve string vazia, nunca erro.
package dateconv

import "strings"

// ToISO converte DD/MM/AAAA (ou DD/MM/AA, século 21 assumido) para AAAA-MM-DD.
// Dia e mês curtos são completados com zero. Devolve "" para entrada vazia ou
// que não se divida em exatamente três partes separadas por "/".
func ToISO(display string) string {
	if display == "" {
		return ""
	}

	parts := strings.Split(display, "/")
	if len(parts) != 3 {
		return ""
	}

	day := padTwo(parts[0])
	month := padTwo(parts[1])
	year := parts[2]

	// Ano com 2 dígitos: assumir século 21
	if len(year) == 2 {
		year = "20" + year
	}

	return year + "-" + month + "-" + day
}

// ToBR converte AAAA-MM-DD para DD/MM/AAAA. Devolve "" para entrada vazia ou
// que não se divida em exatamente três partes separadas por "-".
func ToBR(iso string) string {
	if iso == "" {
		return ""
	}

	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return ""
	}

	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
