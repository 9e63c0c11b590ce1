package utils

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidDateRange indica que a data inicial é posterior à final
var ErrInvalidDateRange = errors.New("data inicial posterior à data final")

// ParseDate interpreta datas no formato YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, errors.Wrapf(err, "data inválida %q", dateStr)
	}

	return &date, nil
}

// ParseDateRange interpreta o par start/end e valida a ordem
func ParseDateRange(startStr, endStr string) (*time.Time, *time.Time, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return nil, nil, err
	}

	end, err := ParseDate(endStr)
	if err != nil {
		return nil, nil, err
	}

	if start != nil && end != nil && start.After(*end) {
		return nil, nil, ErrInvalidDateRange
	}

	return start, end, nil
}

// ExportFileName monta o nome do arquivo exportado, ex: sales_export_20250131.csv
func ExportFileName(prefix string, now time.Time, ext string) string {
	return prefix + "_" + now.Format("20060102") + "." + ext
}
