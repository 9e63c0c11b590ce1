package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta com status 200
func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(ctx).WithError(err).Error("handler: erro ao enviar resposta")
	}
}

// writeServiceError traduz erros do serviço de relatórios sem expor a causa ao cliente
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, operation string) {
	log.ForContext(ctx).WithError(err).Errorf("handler: erro ao %s", operation)

	if errors.Is(err, reporting.ErrDatasetUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dados de vendas indisponíveis no momento", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Ocorreu um erro ao "+operation, nil)
}
