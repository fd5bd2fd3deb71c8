package usecase

import (
	"strings"
	"time"

	"github.com/rfmachado/controle-trocas/internal/application/dto"
	"github.com/rfmachado/controle-trocas/internal/domain"
	"github.com/rfmachado/controle-trocas/internal/domain/entity"
	"github.com/rfmachado/controle-trocas/internal/domain/repository"
	"github.com/rfmachado/controle-trocas/pkg/dateconv"
)

// NotaFiscalUseCase casos de uso de notas fiscais: listagem filtrada, CRUD,
// baixa do consignado e estatísticas. A conversão snake_case/entidade e o
// codec de datas vivem aqui; o repositório só vê valores ISO normalizados.
type NotaFiscalUseCase struct {
	repo repository.NotaFiscalRepository
}

// NewNotaFiscalUseCase constrói o caso de uso.
func NewNotaFiscalUseCase(repo repository.NotaFiscalRepository) *NotaFiscalUseCase {
	return &NotaFiscalUseCase{repo: repo}
}

// List devolve as notas do filtro, ordenadas por data de abertura decrescente,
// com as datas já no formato de exibição.
func (uc *NotaFiscalUseCase) List(filter repository.NotaFiscalFilter) ([]dto.NotaFiscalResponse, error) {
	notas, err := uc.repo.List(normalizarFiltro(filter))
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotaFiscalResponse, 0, len(notas))
	for _, n := range notas {
		items = append(items, *toNotaFiscalResponse(n))
	}
	return items, nil
}

// Create cria uma nota fiscal. Exige data_abertura, codigo_produto, descricao
// e status; tipo assume TROCA e baixado_consignado assume NAO quando omitidos.
func (uc *NotaFiscalUseCase) Create(in dto.CreateNotaFiscalRequest) (*dto.NotaFiscalResponse, error) {
	if in.DataAbertura == "" || in.CodigoProduto == "" || in.Descricao == "" || in.Status == "" {
		return nil, domain.ErrInvalidInput
	}

	dataAbertura := dateconv.ToISO(in.DataAbertura)
	if dataAbertura == "" {
		return nil, domain.ErrInvalidInput
	}

	status := strings.ToUpper(in.Status)
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	tipo := entity.TipoTroca
	if in.Tipo != "" {
		tipo = strings.ToUpper(in.Tipo)
		if !entity.ValidTipo(tipo) {
			return nil, domain.ErrInvalidInput
		}
	}

	baixado := entity.ConsignadoNao
	if in.BaixadoConsignado != "" {
		baixado = strings.ToUpper(in.BaixadoConsignado)
		if !entity.ValidConsignado(baixado) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	nota := &entity.NotaFiscal{
		DataAbertura:       dataAbertura,
		CodigoProduto:      in.CodigoProduto,
		Descricao:          in.Descricao,
		Medida:             optional(in.Medida),
		Tipo:               tipo,
		Status:             status,
		NumeroTroca:        optional(in.NumeroTroca),
		NumeroOcorrencia:   optional(in.NumeroOcorrencia),
		DataTrocaDevolucao: optional(dateconv.ToISO(in.DataTrocaDevolucao)),
		NfTrocaDevolucao:   optional(in.NfTrocaDevolucao),
		BaixadoConsignado:  baixado,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(nota); err != nil {
		return nil, err
	}
	return toNotaFiscalResponse(nota), nil
}

// Update aplica atualização parcial: ponteiro nulo mantém o armazenado,
// campo presente sobrescreve (vazio limpa os opcionais; vazio em campo
// obrigatório é rejeitado). tipo e baixado_consignado não passam por aqui.
func (uc *NotaFiscalUseCase) Update(id int64, in dto.UpdateNotaFiscalRequest) (*dto.NotaFiscalResponse, error) {
	nota, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if nota == nil {
		return nil, domain.ErrNotFound
	}

	if in.DataAbertura != nil {
		iso := dateconv.ToISO(*in.DataAbertura)
		if iso == "" {
			return nil, domain.ErrInvalidInput
		}
		nota.DataAbertura = iso
	}
	if in.CodigoProduto != nil {
		if *in.CodigoProduto == "" {
			return nil, domain.ErrInvalidInput
		}
		nota.CodigoProduto = *in.CodigoProduto
	}
	if in.Descricao != nil {
		if *in.Descricao == "" {
			return nil, domain.ErrInvalidInput
		}
		nota.Descricao = *in.Descricao
	}
	if in.Status != nil {
		status := strings.ToUpper(*in.Status)
		if !entity.ValidStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		nota.Status = status
	}
	if in.Medida != nil {
		nota.Medida = optional(*in.Medida)
	}
	if in.NumeroTroca != nil {
		nota.NumeroTroca = optional(*in.NumeroTroca)
	}
	if in.DataTrocaDevolucao != nil {
		nota.DataTrocaDevolucao = optional(dateconv.ToISO(*in.DataTrocaDevolucao))
	}
	if in.NfTrocaDevolucao != nil {
		nota.NfTrocaDevolucao = optional(*in.NfTrocaDevolucao)
	}

	nota.UpdatedAt = time.Now()
	if err := uc.repo.Update(nota); err != nil {
		return nil, err
	}
	return toNotaFiscalResponse(nota), nil
}

// ToggleConsignado altera apenas baixado_consignado. Idempotente: gravar SIM
// sobre SIM é um no-op efetivo.
func (uc *NotaFiscalUseCase) ToggleConsignado(id int64, valor string) (*dto.ConsignadoData, error) {
	valor = strings.ToUpper(valor)
	if !entity.ValidConsignado(valor) {
		return nil, domain.ErrInvalidInput
	}

	nota, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if nota == nil {
		return nil, domain.ErrNotFound
	}

	nota.BaixadoConsignado = valor
	nota.UpdatedAt = time.Now()
	if err := uc.repo.Update(nota); err != nil {
		return nil, err
	}
	return &dto.ConsignadoData{ID: nota.ID, BaixadoConsignado: nota.BaixadoConsignado}, nil
}

// Delete remove uma nota fiscal (exclusão permanente).
func (uc *NotaFiscalUseCase) Delete(id int64) error {
	nota, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if nota == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Stats devolve total e contagens por status. Como o enum só admite TROCADO e
// DEVOLVIDO, total é sempre a soma das duas contagens.
func (uc *NotaFiscalUseCase) Stats() (*dto.StatsData, error) {
	s, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.StatsData{Total: s.Total, Trocados: s.Trocados, Devolvidos: s.Devolvidos}, nil
}

// normalizarFiltro sobe status e baixado_consignado para maiúsculas; as datas
// do filtro já chegam em ISO e passam direto.
func normalizarFiltro(f repository.NotaFiscalFilter) repository.NotaFiscalFilter {
	f.Status = strings.ToUpper(f.Status)
	f.BaixadoConsignado = strings.ToUpper(f.BaixadoConsignado)
	return f
}

// optional converte string vazia em ponteiro nulo.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toNotaFiscalResponse(n *entity.NotaFiscal) *dto.NotaFiscalResponse {
	if n == nil {
		return nil
	}
	return &dto.NotaFiscalResponse{
		ID:                 n.ID,
		DataAbertura:       dateconv.ToBR(n.DataAbertura),
		CodigoProduto:      n.CodigoProduto,
		Descricao:          n.Descricao,
		Medida:             n.Medida,
		Tipo:               n.Tipo,
		Status:             n.Status,
		NumeroTroca:        n.NumeroTroca,
		NumeroOcorrencia:   n.NumeroOcorrencia,
		DataTrocaDevolucao: optionalBR(n.DataTrocaDevolucao),
		NfTrocaDevolucao:   n.NfTrocaDevolucao,
		BaixadoConsignado:  n.BaixadoConsignado,
		CreatedAt:          n.CreatedAt,
		UpdatedAt:          n.UpdatedAt,
	}
}

func optionalBR(iso *string) *string {
	if iso == nil {
		return nil
	}
	br := dateconv.ToBR(*iso)
	return &br
}
