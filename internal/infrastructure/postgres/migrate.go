package postgres

import (
	"context"
	"fmt"
)

// As datas ficam em VARCHAR(10) no formato ISO (AAAA-MM-DD), não em DATE:
// o codec de datas aceita valores fora do calendário (ex. 2024-02-31) que uma
// coluna DATE rejeitaria, e o filtro de intervalo funciona lexicograficamente.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS produtos (
		id BIGSERIAL PRIMARY KEY,
		codigo VARCHAR(50) NOT NULL UNIQUE,
		descricao VARCHAR(255) NOT NULL,
		medida VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS nota_fiscal (
		id BIGSERIAL PRIMARY KEY,
		data_abertura VARCHAR(10) NOT NULL,
		codigo_produto VARCHAR(50) NOT NULL,
		descricao VARCHAR(255) NOT NULL,
		medida VARCHAR(50),
		tipo VARCHAR(20) NOT NULL DEFAULT 'TROCA',
		status VARCHAR(20) NOT NULL,
		numero_troca VARCHAR(50),
		numero_ocorrencia VARCHAR(50),
		data_troca_devolucao VARCHAR(10),
		nf_troca_devolucao VARCHAR(50),
		baixado_consignado VARCHAR(3) NOT NULL DEFAULT 'NAO',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nota_fiscal_data_abertura ON nota_fiscal (data_abertura DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_nota_fiscal_status ON nota_fiscal (status)`,
}

// Migrate cria as tabelas e índices se não existirem, na inicialização.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range migrations {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
