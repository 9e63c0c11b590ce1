package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// DatasetCacheController expõe o controle do cache de vendas
type DatasetCacheController interface {
	Refresh(ctx context.Context) ([]domain.SalesRecord, error)
	Stats() cache.Stats
}

// RefreshScheduler é o agendador de recarga, que também executa recargas manuais em segundo plano
type RefreshScheduler interface {
	GetStatus() map[string]any
	TriggerManualSync(ctx context.Context) bool
}

// CacheServices agrupa o cache e o agendador de recarga (opcional)
type CacheServices struct {
	Cache     DatasetCacheController
	Scheduler RefreshScheduler
}

// RefreshCache força a recarga do arquivo e retorna o novo estado do cache.
// Com async=true a recarga é entregue ao agendador e a resposta é 202.
func RefreshCache(services CacheServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		async := false
		if raw := r.URL.Query().Get("async"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro async inválido. Use true ou false", nil)
				return
			}
			async = parsed
		}

		if async {
			refreshInBackground(w, r, services.Scheduler)
			return
		}

		records, err := services.Cache.Refresh(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao recarregar cache de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Não foi possível recarregar os dados de vendas", nil)
			return
		}

		log.ForContext(r.Context()).WithField("records", len(records)).Info("handler: cache de vendas recarregado manualmente")

		writeJSON(r.Context(), w, map[string]any{
			"message": "Cache recarregado com sucesso",
			"cache":   services.Cache.Stats(),
		})
	}
}

// GetCacheStatus retorna o estado do cache e do agendador de recarga
func GetCacheStatus(services CacheServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"cache": services.Cache.Stats(),
		}
		if services.Scheduler != nil {
			status["scheduler"] = services.Scheduler.GetStatus()
		}

		writeJSON(r.Context(), w, status)
	}
}

func refreshInBackground(w http.ResponseWriter, r *http.Request, scheduler RefreshScheduler) {
	if scheduler == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Recarga em segundo plano indisponível", nil)
		return
	}

	message := "Recarga iniciada em segundo plano"
	if !scheduler.TriggerManualSync(r.Context()) {
		message = "Recarga já em andamento"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"message":   message,
		"scheduler": scheduler.GetStatus(),
	}); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao enviar resposta")
	}
}
