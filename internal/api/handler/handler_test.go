package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var fixedNow = func() time.Time {
	return time.Date(2025, time.January, 31, 10, 0, 0, 0, time.UTC)
}

var errUnavailable = errors.Join(reporting.ErrDatasetUnavailable, errors.New("arquivo não encontrado"))

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func newTestRouter(service reporting.SalesReporter, services CacheServices) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Sales(service)...),
		router.WithRoutes(Export(service, fixedNow)...),
		router.WithRoutes(Cache(services)...),
	)
}

func serve(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func testRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{
			Segment:            "Government",
			Country:            "Canada",
			Product:            "Carretera",
			DiscountBand:       "None",
			UnitsSold:          decimal.NewFromInt(1000),
			ManufacturingPrice: decimal.NewFromInt(3),
			SalePrice:          decimal.NewFromInt(20),
			Date:               time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

type fakeCache struct {
	records []domain.SalesRecord
	err     error
	stats   cache.Stats
	calls   int
}

func (f *fakeCache) Refresh(ctx context.Context) ([]domain.SalesRecord, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeCache) Stats() cache.Stats {
	return f.stats
}

type fakeScheduler struct {
	status    map[string]any
	busy      bool
	triggered int
}

func (f *fakeScheduler) GetStatus() map[string]any {
	return f.status
}

func (f *fakeScheduler) TriggerManualSync(ctx context.Context) bool {
	if f.busy {
		return false
	}
	f.triggered++
	return true
}

func TestGetSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSalesReporter(ctrl)
	service.EXPECT().GetAllRecords(gomock.Any()).Return(testRecords(), nil)

	rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, "/v1/sales")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"segment":"Government"`)
	assert.Contains(t, rec.Body.String(), `"revenue":20000`)
	assert.Contains(t, rec.Body.String(), `"date":"2014-01-01"`)
}

func TestGetFilteredSales(t *testing.T) {
	start := time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2014, time.March, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		expectFilter *domain.SalesFilter
		expectStatus int
		expectCode   string
	}{
		{
			name:         "Sem filtros",
			query:        "",
			expectFilter: &domain.SalesFilter{},
			expectStatus: http.StatusOK,
		},
		{
			name:  "Todos os filtros",
			query: "?segment=Government&country=Canada&product=Paseo&discountBand=High&startDate=2014-01-01&endDate=2014-03-31",
			expectFilter: &domain.SalesFilter{
				Segment:      "Government",
				Country:      "Canada",
				Product:      "Paseo",
				DiscountBand: "High",
				StartDate:    &start,
				EndDate:      &end,
			},
			expectStatus: http.StatusOK,
		},
		{
			name:         "Data em formato inválido",
			query:        "?startDate=31/01/2014",
			expectStatus: http.StatusBadRequest,
			expectCode:   "VAL_003",
		},
		{
			name:         "Intervalo invertido",
			query:        "?startDate=2014-03-31&endDate=2014-01-01",
			expectStatus: http.StatusBadRequest,
			expectCode:   "VAL_004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSalesReporter(ctrl)
			if tt.expectFilter != nil {
				service.EXPECT().GetFilteredRecords(gomock.Any(), tt.expectFilter).Return(testRecords(), nil)
			}

			rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, "/v1/sales/filter"+tt.query)

			assert.Equal(t, tt.expectStatus, rec.Code)
			if tt.expectCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectCode)
			}
		})
	}
}

func TestGetAggregateRoutes(t *testing.T) {
	aggregate := domain.NewGroupAggregate()
	aggregate.Add("Government", decimal.NewFromInt(207500))
	aggregate.Add("Midmarket", decimal.NewFromInt(7500))

	tests := []struct {
		path   string
		expect func(service *mocks.MockSalesReporter)
	}{
		{"/v1/sales/by-segment", func(s *mocks.MockSalesReporter) { s.EXPECT().GetBySegment(gomock.Any()).Return(aggregate, nil) }},
		{"/v1/sales/by-country", func(s *mocks.MockSalesReporter) { s.EXPECT().GetByCountry(gomock.Any()).Return(aggregate, nil) }},
		{"/v1/sales/by-product", func(s *mocks.MockSalesReporter) { s.EXPECT().GetByProduct(gomock.Any()).Return(aggregate, nil) }},
		{"/v1/sales/by-month", func(s *mocks.MockSalesReporter) { s.EXPECT().GetByMonth(gomock.Any()).Return(aggregate, nil) }},
		{"/v1/sales/by-discount-band", func(s *mocks.MockSalesReporter) { s.EXPECT().GetByDiscountBand(gomock.Any()).Return(aggregate, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSalesReporter(ctrl)
			tt.expect(service)

			rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, tt.path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, `{"Government":207500,"Midmarket":7500}`+"\n", rec.Body.String())
		})
	}
}

func TestDatasetUnavailable(t *testing.T) {
	paths := []string{
		"/v1/sales",
		"/v1/sales/filter",
		"/v1/filter-options",
		"/v1/summary",
		"/v1/sales/by-segment",
		"/v1/dashboard",
		"/v1/export/csv",
		"/v1/export/xlsx",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSalesReporter(ctrl)
			service.EXPECT().GetAllRecords(gomock.Any()).Return(nil, errUnavailable).AnyTimes()
			service.EXPECT().GetFilteredRecords(gomock.Any(), gomock.Any()).Return(nil, errUnavailable).AnyTimes()
			service.EXPECT().GetFilterOptions(gomock.Any()).Return(nil, errUnavailable).AnyTimes()
			service.EXPECT().GetSummary(gomock.Any()).Return(nil, errUnavailable).AnyTimes()
			service.EXPECT().GetBySegment(gomock.Any()).Return(nil, errUnavailable).AnyTimes()
			service.EXPECT().GetDashboard(gomock.Any()).Return(nil, errUnavailable).AnyTimes()

			rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, path)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Contains(t, rec.Body.String(), "SRV_005")
			assert.NotContains(t, rec.Body.String(), "arquivo não encontrado")
		})
	}
}

func TestInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSalesReporter(ctrl)
	service.EXPECT().GetSummary(gomock.Any()).Return(nil, errors.New("falha inesperada"))

	rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, "/v1/summary")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"SRV_001","message":"Ocorreu um erro ao buscar resumo de vendas"}`, rec.Body.String())
}

func TestGetSummaryAndOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSalesReporter(ctrl)
	service.EXPECT().GetSummary(gomock.Any()).Return(&domain.SalesSummary{
		TotalRevenue:      decimal.NewFromInt(20000),
		TotalProfit:       decimal.NewFromInt(17000),
		TotalUnitsSold:    decimal.NewFromInt(1000),
		AverageOrderValue: decimal.NewFromInt(20000),
		OrderCount:        1,
		ProfitMargin:      decimal.RequireFromString("0.85"),
	}, nil)
	service.EXPECT().GetFilterOptions(gomock.Any()).Return(&domain.FilterOptions{
		Segments:      []string{"Government"},
		Countries:     []string{"Canada"},
		Products:      []string{"Carretera"},
		DiscountBands: []string{"None"},
	}, nil)

	rt := newTestRouter(service, CacheServices{Cache: &fakeCache{}})

	rec := serve(rt, http.MethodGet, "/v1/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_revenue": 20000,
		"total_profit": 17000,
		"total_units_sold": 1000,
		"average_order_value": 20000,
		"order_count": 1,
		"profit_margin": 0.85
	}`, rec.Body.String())

	rec = serve(rt, http.MethodGet, "/v1/filter-options")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"segments": ["Government"],
		"countries": ["Canada"],
		"products": ["Carretera"],
		"discount_bands": ["None"]
	}`, rec.Body.String())
}

func TestGetDashboard(t *testing.T) {
	segments := domain.NewGroupAggregate()
	segments.Add("Government", decimal.NewFromInt(20000))

	ctrl := gomock.NewController(t)
	service := mocks.NewMockSalesReporter(ctrl)
	service.EXPECT().GetDashboard(gomock.Any()).Return(&domain.Dashboard{
		Summary:             &domain.SalesSummary{OrderCount: 1},
		SalesBySegment:      segments,
		SalesByCountry:      domain.NewGroupAggregate(),
		SalesByProduct:      domain.NewGroupAggregate(),
		SalesByMonth:        domain.NewGroupAggregate(),
		SalesByDiscountBand: domain.NewGroupAggregate(),
		RecentSales:         testRecords(),
	}, nil)

	rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, "/v1/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"sales_by_segment":{"Government":20000}`)
	assert.Contains(t, body, `"sales_by_month":{}`)
	assert.Contains(t, body, `"recent_sales":[{`)
}

func TestExport(t *testing.T) {
	tests := []struct {
		path              string
		expectType        string
		expectDisposition string
	}{
		{
			path:              "/v1/export/csv",
			expectType:        "text/csv; charset=utf-8",
			expectDisposition: `attachment; filename="sales_export_20250131.csv"`,
		},
		{
			path:              "/v1/export/xlsx",
			expectType:        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			expectDisposition: `attachment; filename="sales_export_20250131.xlsx"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSalesReporter(ctrl)
			service.EXPECT().GetAllRecords(gomock.Any()).Return(testRecords(), nil)

			rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, tt.path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectDisposition, rec.Header().Get("Content-Disposition"))
			assert.NotEmpty(t, rec.Body.Bytes())
		})
	}
}

func TestExportCSV_Body(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSalesReporter(ctrl)
	service.EXPECT().GetAllRecords(gomock.Any()).Return(testRecords(), nil)

	rec := serve(newTestRouter(service, CacheServices{Cache: &fakeCache{}}), http.MethodGet, "/v1/export/csv")

	expected := "Date,Segment,Country,Product,DiscountBand,UnitsSold,ManufacturingPrice,SalePrice,Revenue,Profit\n" +
		"2014-01-01,Government,Canada,Carretera,None,1000,3,20,20000,17000\n"
	assert.Equal(t, expected, rec.Body.String())
	assert.Equal(t, "162", rec.Header().Get("Content-Length"))
}

func TestRefreshCache(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		fc := &fakeCache{records: testRecords(), stats: cache.Stats{Cached: true, Records: 1, Generation: "abc"}}
		rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), CacheServices{Cache: fc})

		rec := serve(rt, http.MethodPost, "/v1/cache/refresh")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, fc.calls)
		assert.Contains(t, rec.Body.String(), `"message":"Cache recarregado com sucesso"`)
		assert.Contains(t, rec.Body.String(), `"generation":"abc"`)
	})

	t.Run("Falha na carga", func(t *testing.T) {
		fc := &fakeCache{err: errors.New("arquivo corrompido")}
		rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), CacheServices{Cache: fc})

		rec := serve(rt, http.MethodPost, "/v1/cache/refresh")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_005")
	})

	t.Run("Método não suportado", func(t *testing.T) {
		fc := &fakeCache{}
		rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), CacheServices{Cache: fc})

		rec := serve(rt, http.MethodGet, "/v1/cache/refresh")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_006")
		assert.Zero(t, fc.calls)
	})
}

func TestRefreshCache_Async(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		scheduler     *fakeScheduler
		expectStatus  int
		expectBody    string
		expectTrigger int
	}{
		{
			name:          "Recarga entregue ao agendador",
			query:         "?async=true",
			scheduler:     &fakeScheduler{status: map[string]any{"refresh_running": true}},
			expectStatus:  http.StatusAccepted,
			expectBody:    `"message":"Recarga iniciada em segundo plano"`,
			expectTrigger: 1,
		},
		{
			name:         "Recarga já em andamento",
			query:        "?async=1",
			scheduler:    &fakeScheduler{busy: true, status: map[string]any{"refresh_running": true}},
			expectStatus: http.StatusAccepted,
			expectBody:   `"message":"Recarga já em andamento"`,
		},
		{
			name:         "Sem agendador configurado",
			query:        "?async=true",
			expectStatus: http.StatusBadRequest,
			expectBody:   "VAL_001",
		},
		{
			name:         "Parâmetro inválido",
			query:        "?async=talvez",
			scheduler:    &fakeScheduler{},
			expectStatus: http.StatusBadRequest,
			expectBody:   "VAL_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCache{}
			services := CacheServices{Cache: fc}
			if tt.scheduler != nil {
				services.Scheduler = tt.scheduler
			}
			rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), services)

			rec := serve(rt, http.MethodPost, "/v1/cache/refresh"+tt.query)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectBody)
			assert.Zero(t, fc.calls, "a recarga síncrona não deve ser chamada")
			if tt.scheduler != nil {
				assert.Equal(t, tt.expectTrigger, tt.scheduler.triggered)
			}
		})
	}
}

func TestRefreshCache_AsyncFalseIsSynchronous(t *testing.T) {
	fc := &fakeCache{records: testRecords()}
	scheduler := &fakeScheduler{}
	rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), CacheServices{Cache: fc, Scheduler: scheduler})

	rec := serve(rt, http.MethodPost, "/v1/cache/refresh?async=false")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fc.calls)
	assert.Zero(t, scheduler.triggered)
}

func TestGetCacheStatus(t *testing.T) {
	fc := &fakeCache{stats: cache.Stats{Cached: true, Records: 700, Hits: 3}}

	t.Run("Sem agendador", func(t *testing.T) {
		rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), CacheServices{Cache: fc})

		rec := serve(rt, http.MethodGet, "/v1/cache/status")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"records":700`)
		assert.NotContains(t, rec.Body.String(), "scheduler")
	})

	t.Run("Com agendador", func(t *testing.T) {
		rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), CacheServices{
			Cache:     fc,
			Scheduler: &fakeScheduler{status: map[string]any{"refresh_enabled": true}},
		})

		rec := serve(rt, http.MethodGet, "/v1/cache/status")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"scheduler":{"refresh_enabled":true}`)
	})
}

func TestHealthcheckAndNotFound(t *testing.T) {
	rt := newTestRouter(mocks.NewMockSalesReporter(gomock.NewController(t)), CacheServices{Cache: &fakeCache{}})

	rec := serve(rt, http.MethodGet, "/healthcheck")
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)

	rec = serve(rt, http.MethodGet, "/v1/inexistente")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"VAL_005","message":"Rota não encontrada"}`, rec.Body.String())
}
