package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(service reporting.SalesReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
		{
			Path:    "/v1/sales/filter",
			Method:  http.MethodGet,
			Handler: GetFilteredSales(service),
		},
		{
			Path:    "/v1/filter-options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/sales/by-segment",
			Method:  http.MethodGet,
			Handler: GetAggregate(service.GetBySegment, "buscar vendas por segmento"),
		},
		{
			Path:    "/v1/sales/by-country",
			Method:  http.MethodGet,
			Handler: GetAggregate(service.GetByCountry, "buscar vendas por país"),
		},
		{
			Path:    "/v1/sales/by-product",
			Method:  http.MethodGet,
			Handler: GetAggregate(service.GetByProduct, "buscar vendas por produto"),
		},
		{
			Path:    "/v1/sales/by-month",
			Method:  http.MethodGet,
			Handler: GetAggregate(service.GetByMonth, "buscar vendas por mês"),
		},
		{
			Path:    "/v1/sales/by-discount-band",
			Method:  http.MethodGet,
			Handler: GetAggregate(service.GetByDiscountBand, "buscar vendas por faixa de desconto"),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Export(service reporting.SalesReporter, now func() time.Time) []router.Route {
	if now == nil {
		now = time.Now
	}

	return []router.Route{
		{
			Path:    "/v1/export/csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(service, now),
		},
		{
			Path:    "/v1/export/xlsx",
			Method:  http.MethodGet,
			Handler: ExportXLSX(service, now),
		},
	}
}

func Cache(services CacheServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCache(services),
		},
		{
			Path:    "/v1/cache/status",
			Method:  http.MethodGet,
			Handler: GetCacheStatus(services),
		},
	}
}
