package dateconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToISO(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"data completa", "05/03/2024", "2024-03-05"},
		{"dia e mes curtos", "5/3/2024", "2024-03-05"},
		{"ano com dois digitos", "01/02/23", "2023-02-01"},
		{"data nao calendarica aceita", "31/02/2024", "2024-02-31"},
		{"vazia", "", ""},
		{"sem separador", "05-03-2024", ""},
		{"partes demais", "05/03/2024/1", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToISO(tc.in))
		})
	}
}

func TestToBR(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"data completa", "2024-03-05", "05/03/2024"},
		{"vazia", "", ""},
		{"malformada", "2024/03/05", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToBR(tc.in))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	assert.Equal(t, "25/12/2023", ToBR(ToISO("25/12/2023")))
	assert.Equal(t, "2024-02-31", ToISO(ToBR("2024-02-31")))
}
