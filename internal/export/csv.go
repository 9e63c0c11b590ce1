// Package export gera os arquivos de exportação (CSV e XLSX) do conjunto de vendas.
package export

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FilePrefix é o prefixo dos arquivos exportados
const FilePrefix = "sales_export"

// Columns são as colunas de saída, na ordem em que são escritas
var Columns = []string{
	"Date",
	"Segment",
	"Country",
	"Product",
	"DiscountBand",
	"UnitsSold",
	"ManufacturingPrice",
	"SalePrice",
	"Revenue",
	"Profit",
}

// EscapeField envolve o campo em aspas quando ele contém vírgula, aspas ou quebra de linha.
// Aspas internas são duplicadas.
func EscapeField(field string) string {
	if field == "" {
		return ""
	}

	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}

	return field
}

// row monta os valores de uma linha na ordem de Columns, sem escape
func row(r domain.SalesRecord) []string {
	return []string{
		r.Date.Format(time.DateOnly),
		r.Segment,
		r.Country,
		r.Product,
		r.DiscountBand,
		r.UnitsSold.String(),
		r.ManufacturingPrice.String(),
		r.SalePrice.String(),
		r.Revenue().String(),
		r.Profit().String(),
	}
}

// WriteCSV escreve o cabeçalho e uma linha por registro.
// Apenas os campos de texto passam por EscapeField; data e números nunca contêm separadores.
func WriteCSV(w io.Writer, records []domain.SalesRecord) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Columns, ",") + "\n"); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for _, record := range records {
		values := row(record)
		for i := 1; i <= 4; i++ {
			values[i] = EscapeField(values[i])
		}

		if _, err := bw.WriteString(strings.Join(values, ",") + "\n"); err != nil {
			return errors.Wrap(err, "erro ao escrever linha")
		}
	}

	return errors.Wrap(bw.Flush(), "erro ao finalizar arquivo csv")
}
