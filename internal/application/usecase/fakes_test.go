package usecase

import (
	"io"
	"sort"
	"strings"

	"github.com/rfmachado/controle-trocas/internal/domain"
	"github.com/rfmachado/controle-trocas/internal/domain/entity"
	"github.com/rfmachado/controle-trocas/internal/domain/repository"
)

// fakeNotaRepo repositório de notas em memória com a mesma semântica de
// filtro e deduplicação do adaptador PostgreSQL.
type fakeNotaRepo struct {
	seq   int64
	notas []*entity.NotaFiscal
}

func newFakeNotaRepo() *fakeNotaRepo { return &fakeNotaRepo{} }

func (r *fakeNotaRepo) Create(nota *entity.NotaFiscal) error {
	r.seq++
	nota.ID = r.seq
	clone := *nota
	r.notas = append(r.notas, &clone)
	return nil
}

func (r *fakeNotaRepo) GetByID(id int64) (*entity.NotaFiscal, error) {
	for _, n := range r.notas {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeNotaRepo) List(filter repository.NotaFiscalFilter) ([]*entity.NotaFiscal, error) {
	var out []*entity.NotaFiscal
	for _, n := range r.notas {
		if filter.Status != "" && n.Status != filter.Status {
			continue
		}
		if filter.CodigoProduto != "" && !strings.Contains(n.CodigoProduto, filter.CodigoProduto) {
			continue
		}
		if filter.BaixadoConsignado != "" && n.BaixadoConsignado != filter.BaixadoConsignado {
			continue
		}
		if filter.DataInicio != "" && n.DataAbertura < filter.DataInicio {
			continue
		}
		if filter.DataFim != "" && n.DataAbertura > filter.DataFim {
			continue
		}
		clone := *n
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DataAbertura != out[j].DataAbertura {
			return out[i].DataAbertura > out[j].DataAbertura
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeNotaRepo) Update(nota *entity.NotaFiscal) error {
	for i, n := range r.notas {
		if n.ID == nota.ID {
			clone := *nota
			r.notas[i] = &clone
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeNotaRepo) Delete(id int64) error {
	for i, n := range r.notas {
		if n.ID == id {
			r.notas = append(r.notas[:i], r.notas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeNotaRepo) ExistsDuplicada(codigoProduto string, numeroTroca *string) (bool, error) {
	for _, n := range r.notas {
		if n.CodigoProduto != codigoProduto {
			continue
		}
		if n.NumeroTroca == nil && numeroTroca == nil {
			return true, nil
		}
		if n.NumeroTroca != nil && numeroTroca != nil && *n.NumeroTroca == *numeroTroca {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotaRepo) Stats() (repository.NotaFiscalStats, error) {
	var s repository.NotaFiscalStats
	for _, n := range r.notas {
		s.Total++
		switch n.Status {
		case entity.StatusTrocado:
			s.Trocados++
		case entity.StatusDevolvido:
			s.Devolvidos++
		}
	}
	return s, nil
}

// fakeProdutoRepo catálogo em memória.
type fakeProdutoRepo struct {
	seq      int64
	produtos []*entity.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo { return &fakeProdutoRepo{} }

func (r *fakeProdutoRepo) Create(produto *entity.Produto) error {
	for _, p := range r.produtos {
		if p.Codigo == produto.Codigo {
			return domain.ErrDuplicate
		}
	}
	r.seq++
	produto.ID = r.seq
	clone := *produto
	r.produtos = append(r.produtos, &clone)
	return nil
}

func (r *fakeProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	for _, p := range r.produtos {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	for _, p := range r.produtos {
		if p.Codigo == codigo {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProdutoRepo) Update(produto *entity.Produto) error {
	for i, p := range r.produtos {
		if p.ID == produto.ID {
			clone := *produto
			r.produtos[i] = &clone
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProdutoRepo) Search(query string, limit int) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range r.produtos {
		if query == "" || strings.Contains(p.Codigo, query) || strings.Contains(p.Descricao, query) {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Descricao < out[j].Descricao })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProdutoRepo) Delete(id int64) error {
	for i, p := range r.produtos {
		if p.ID == id {
			r.produtos = append(r.produtos[:i], r.produtos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeRowReader devolve linhas fixas, ignorando o arquivo.
type fakeRowReader struct {
	rows []map[string]string
	err  error
}

func (f *fakeRowReader) LerLinhas(_ string, _ io.Reader) ([]map[string]string, error) {
	return f.rows, f.err
}
