package entity

import "time"

// Produto entrada do catálogo usada para autocompletar e referência.
// Codigo é chave de negócio única e imutável após a criação.
type Produto struct {
	ID        int64
	Codigo    string
	Descricao string
	Medida    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
