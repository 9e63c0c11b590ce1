package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/export"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportWriter func(w io.Writer, records []domain.SalesRecord) error

// ExportCSV gera o arquivo CSV com todos os registros
func ExportCSV(service reporting.SalesReporter, now func() time.Time) http.HandlerFunc {
	return exportHandler(service, now, export.WriteCSV, "csv", contentTypeCSV)
}

// ExportXLSX gera a planilha com todos os registros
func ExportXLSX(service reporting.SalesReporter, now func() time.Time) http.HandlerFunc {
	return exportHandler(service, now, export.WriteXLSX, "xlsx", contentTypeXLSX)
}

// exportHandler gera o arquivo em memória antes de responder, para que uma falha
// no meio da escrita ainda possa retornar um erro padronizado
func exportHandler(service reporting.SalesReporter, now func() time.Time, write exportWriter, ext, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := service.GetAllRecords(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err, "exportar dados de vendas")
			return
		}

		var buf bytes.Buffer
		if err := write(&buf, records); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao gerar arquivo de exportação")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Ocorreu um erro ao exportar dados de vendas", nil)
			return
		}

		fileName := utils.ExportFileName(export.FilePrefix, now(), ext)

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("handler: erro ao enviar arquivo de exportação")
		}
	}
}
