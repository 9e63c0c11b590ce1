// Package reporting calcula o resumo e os agrupamentos de vendas
// sobre o conjunto mantido em cache.
package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_reporting.go -package=mocks

// DefaultRecentSalesLimit é a quantidade de vendas recentes exibidas no painel
const DefaultRecentSalesLimit = 50

// DatasetProvider fornece o conjunto completo de vendas
type DatasetProvider interface {
	Get(ctx context.Context) ([]domain.SalesRecord, error)
}

// SalesReporter é o contrato consumido pelos adaptadores (HTTP, exportação, CLI)
type SalesReporter interface {
	// GetAllRecords retorna todos os registros na ordem do arquivo
	GetAllRecords(ctx context.Context) ([]domain.SalesRecord, error)

	// GetFilteredRecords retorna os registros que atendem ao filtro
	GetFilteredRecords(ctx context.Context, filter *domain.SalesFilter) ([]domain.SalesRecord, error)

	// GetFilterOptions retorna os valores distintos de cada dimensão
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	GetSummary(ctx context.Context) (*domain.SalesSummary, error)
	GetBySegment(ctx context.Context) (*domain.GroupAggregate, error)
	GetByCountry(ctx context.Context) (*domain.GroupAggregate, error)
	GetByProduct(ctx context.Context) (*domain.GroupAggregate, error)
	GetByMonth(ctx context.Context) (*domain.GroupAggregate, error)
	GetByDiscountBand(ctx context.Context) (*domain.GroupAggregate, error)

	// GetDashboard reúne resumo, agrupamentos e vendas recentes em uma única leitura do cache
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
}

// Config define os limites dos rankings e da lista de vendas recentes
type Config struct {
	TopN             int
	RecentSalesLimit int
}

// Service implementa SalesReporter sobre um DatasetProvider
type Service struct {
	provider DatasetProvider
	config   Config
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(provider DatasetProvider, cfg Config) SalesReporter {
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}
	if cfg.RecentSalesLimit <= 0 {
		cfg.RecentSalesLimit = DefaultRecentSalesLimit
	}

	return &Service{
		provider: provider,
		config:   cfg,
	}
}

func (s *Service) dataset(ctx context.Context) ([]domain.SalesRecord, error) {
	records, err := s.provider.Get(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: erro ao obter dados de vendas")
		return nil, &datasetError{cause: err}
	}
	return records, nil
}

// GetAllRecords retorna uma cópia do conjunto para que o cache não seja alterado
func (s *Service) GetAllRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SalesRecord, len(records))
	copy(out, records)
	return out, nil
}

func (s *Service) GetFilteredRecords(ctx context.Context, filter *domain.SalesFilter) ([]domain.SalesRecord, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(records, filter), nil
}

func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctOptions(records), nil
}

func (s *Service) GetSummary(ctx context.Context) (*domain.SalesSummary, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(records), nil
}

func (s *Service) GetBySegment(ctx context.Context) (*domain.GroupAggregate, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return BySegment(records), nil
}

func (s *Service) GetByCountry(ctx context.Context) (*domain.GroupAggregate, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ByCountry(records, s.config.TopN), nil
}

func (s *Service) GetByProduct(ctx context.Context) (*domain.GroupAggregate, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ByProduct(records, s.config.TopN), nil
}

func (s *Service) GetByMonth(ctx context.Context) (*domain.GroupAggregate, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ByMonth(records), nil
}

func (s *Service) GetByDiscountBand(ctx context.Context) (*domain.GroupAggregate, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ByDiscountBand(records), nil
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	records, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Summary:             Summarize(records),
		SalesBySegment:      BySegment(records),
		SalesByCountry:      ByCountry(records, s.config.TopN),
		SalesByProduct:      ByProduct(records, s.config.TopN),
		SalesByMonth:        ByMonth(records),
		SalesByDiscountBand: ByDiscountBand(records),
		RecentSales:         RecentSales(records, s.config.RecentSalesLimit),
	}, nil
}
