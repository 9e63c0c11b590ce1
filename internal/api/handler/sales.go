package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetSales retorna todos os registros de venda
func GetSales(service reporting.SalesReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := service.GetAllRecords(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err, "buscar dados de vendas")
			return
		}

		writeJSON(r.Context(), w, records)
	}
}

// GetFilteredSales aplica os filtros da query string.
// Datas no formato YYYY-MM-DD, limites inclusivos.
func GetFilteredSales(service reporting.SalesReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		startDate, endDate, err := utils.ParseDateRange(query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			if errors.Is(err, utils.ErrInvalidDateRange) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "A data inicial deve ser anterior ou igual à data final", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido. Use YYYY-MM-DD", nil)
			return
		}

		filter := &domain.SalesFilter{
			Segment:      query.Get("segment"),
			Country:      query.Get("country"),
			Product:      query.Get("product"),
			DiscountBand: query.Get("discountBand"),
			StartDate:    startDate,
			EndDate:      endDate,
		}

		records, err := service.GetFilteredRecords(r.Context(), filter)
		if err != nil {
			writeServiceError(r.Context(), w, err, "buscar dados de vendas filtrados")
			return
		}

		writeJSON(r.Context(), w, records)
	}
}

func GetFilterOptions(service reporting.SalesReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err, "buscar opções de filtro")
			return
		}

		writeJSON(r.Context(), w, options)
	}
}

func GetSummary(service reporting.SalesReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err, "buscar resumo de vendas")
			return
		}

		writeJSON(r.Context(), w, summary)
	}
}

// GetAggregate expõe um dos agrupamentos do serviço como objeto JSON ordenado
func GetAggregate(aggregate func(ctx context.Context) (*domain.GroupAggregate, error), operation string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := aggregate(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err, operation)
			return
		}

		writeJSON(r.Context(), w, result)
	}
}

func GetDashboard(service reporting.SalesReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.GetDashboard(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err, "buscar dados do painel")
			return
		}

		writeJSON(r.Context(), w, dashboard)
	}
}
