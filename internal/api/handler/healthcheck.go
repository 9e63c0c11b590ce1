package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().Format(time.RFC3339)))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("handler: erro ao responder healthcheck")
		}
	})
}
