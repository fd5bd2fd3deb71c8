package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/rfmachado/controle-trocas/internal/domain/entity"
	"github.com/rfmachado/controle-trocas/internal/domain/repository"
)

var _ repository.NotaFiscalRepository = (*NotaFiscalRepo)(nil)

const notaFiscalColumns = `id, data_abertura, codigo_produto, descricao, medida, tipo, status,
		numero_troca, numero_ocorrencia, data_troca_devolucao, nf_troca_devolucao,
		baixado_consignado, created_at, updated_at`

// NotaFiscalRepo implementação do porte NotaFiscalRepository sobre PostgreSQL.
type NotaFiscalRepo struct {
	q Querier
}

// NewNotaFiscalRepository constrói o adaptador de persistência. Passar pool ou tx (Querier).
func NewNotaFiscalRepository(q Querier) *NotaFiscalRepo {
	return &NotaFiscalRepo{q: q}
}

// Create persiste uma nova nota fiscal e preenche o ID gerado.
func (r *NotaFiscalRepo) Create(nota *entity.NotaFiscal) error {
	query := `
		INSERT INTO nota_fiscal (data_abertura, codigo_produto, descricao, medida, tipo, status,
			numero_troca, numero_ocorrencia, data_troca_devolucao, nf_troca_devolucao,
			baixado_consignado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		nota.DataAbertura, nota.CodigoProduto, nota.Descricao, nota.Medida, nota.Tipo,
		nota.Status, nota.NumeroTroca, nota.NumeroOcorrencia, nota.DataTrocaDevolucao,
		nota.NfTrocaDevolucao, nota.BaixadoConsignado, nota.CreatedAt, nota.UpdatedAt,
	).Scan(&nota.ID)
	if err != nil {
		return fmt.Errorf("insert nota fiscal: %w", err)
	}
	return nil
}

// GetByID obtém uma nota fiscal por ID. Devolve nil se não existir.
func (r *NotaFiscalRepo) GetByID(id int64) (*entity.NotaFiscal, error) {
	query := `SELECT ` + notaFiscalColumns + ` FROM nota_fiscal WHERE id = $1`
	nota, err := scanNotaFiscal(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota fiscal: %w", err)
	}
	return nota, nil
}

// List devolve as notas do filtro ordenadas por data de abertura decrescente.
// O desempate por id mantém a ordem de inserção estável entre execuções.
func (r *NotaFiscalRepo) List(filter repository.NotaFiscalFilter) ([]*entity.NotaFiscal, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.CodigoProduto != "" {
		add("codigo_produto LIKE $%d", "%"+filter.CodigoProduto+"%")
	}
	if filter.BaixadoConsignado != "" {
		add("baixado_consignado = $%d", filter.BaixadoConsignado)
	}
	if filter.DataInicio != "" {
		add("data_abertura >= $%d", filter.DataInicio)
	}
	if filter.DataFim != "" {
		add("data_abertura <= $%d", filter.DataFim)
	}

	query := `SELECT ` + notaFiscalColumns + ` FROM nota_fiscal`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY data_abertura DESC, id ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notas fiscais: %w", err)
	}
	defer rows.Close()

	var list []*entity.NotaFiscal
	for rows.Next() {
		nota, err := scanNotaFiscal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nota fiscal: %w", err)
		}
		list = append(list, nota)
	}
	return list, rows.Err()
}

// Update sobrescreve todos os campos mutáveis da nota (inclusive baixado_consignado;
// quem decide o que muda é a camada de aplicação).
func (r *NotaFiscalRepo) Update(nota *entity.NotaFiscal) error {
	query := `
		UPDATE nota_fiscal SET data_abertura = $2, codigo_produto = $3, descricao = $4,
			medida = $5, tipo = $6, status = $7, numero_troca = $8, numero_ocorrencia = $9,
			data_troca_devolucao = $10, nf_troca_devolucao = $11, baixado_consignado = $12,
			updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		nota.ID, nota.DataAbertura, nota.CodigoProduto, nota.Descricao, nota.Medida,
		nota.Tipo, nota.Status, nota.NumeroTroca, nota.NumeroOcorrencia,
		nota.DataTrocaDevolucao, nota.NfTrocaDevolucao, nota.BaixadoConsignado, nota.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update nota fiscal: %w", err)
	}
	return nil
}

// Delete remove uma nota fiscal por ID (exclusão permanente, sem soft-delete).
func (r *NotaFiscalRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM nota_fiscal WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete nota fiscal: %w", err)
	}
	return nil
}

// ExistsDuplicada verifica o par (codigo_produto, numero_troca) usado na
// deduplicação de importação. IS NOT DISTINCT FROM faz NULL casar com NULL.
func (r *NotaFiscalRepo) ExistsDuplicada(codigoProduto string, numeroTroca *string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (
			SELECT 1 FROM nota_fiscal
			WHERE codigo_produto = $1 AND numero_troca IS NOT DISTINCT FROM $2
		)`,
		codigoProduto, numeroTroca,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check nota duplicada: %w", err)
	}
	return exists, nil
}

// Stats devolve as contagens total e por status em uma única consulta.
func (r *NotaFiscalRepo) Stats() (repository.NotaFiscalStats, error) {
	var s repository.NotaFiscalStats
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'TROCADO'),
			COUNT(*) FILTER (WHERE status = 'DEVOLVIDO')
		FROM nota_fiscal`,
	).Scan(&s.Total, &s.Trocados, &s.Devolvidos)
	if err != nil {
		return repository.NotaFiscalStats{}, fmt.Errorf("stats notas fiscais: %w", err)
	}
	return s, nil
}

// pgxScanner abstrai pgx.Row e pgx.Rows para reutilizar scanNotaFiscal.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanNotaFiscal(row pgxScanner) (*entity.NotaFiscal, error) {
	var n entity.NotaFiscal
	err := row.Scan(
		&n.ID, &n.DataAbertura, &n.CodigoProduto, &n.Descricao, &n.Medida, &n.Tipo,
		&n.Status, &n.NumeroTroca, &n.NumeroOcorrencia, &n.DataTrocaDevolucao,
		&n.NfTrocaDevolucao, &n.BaixadoConsignado, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
