// Package csvfile converte o arquivo delimitado de vendas em registros tipados.
//
// As colunas são localizadas pelo nome do cabeçalho, então a ordem no arquivo
// não importa. Valores inválidos em uma linha nunca descartam a linha: cada
// campo tem seu valor de fallback (zero para números, data mínima para datas).
package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Nomes das colunas do arquivo de origem
const (
	ColumnSegment            = "Segment"
	ColumnCountry            = "Country"
	ColumnProduct            = "Product"
	ColumnDiscountBand       = "Discount Band"
	ColumnUnitsSold          = "Units Sold"
	ColumnManufacturingPrice = "Manufacturing Price"
	ColumnSalePrice          = "Sale Price"
	ColumnDate               = "Date"
)

// RequiredColumns lista as colunas que o cabeçalho precisa conter
var RequiredColumns = []string{
	ColumnSegment,
	ColumnCountry,
	ColumnProduct,
	ColumnDiscountBand,
	ColumnUnitsSold,
	ColumnManufacturingPrice,
	ColumnSalePrice,
	ColumnDate,
}

// cancelCheckInterval define de quantas em quantas linhas o contexto é verificado
const cancelCheckInterval = 1000

// Config define como o arquivo é lido
type Config struct {
	Encoding        string
	Delimiter       rune
	CurrencySymbols []string
}

// DefaultConfig retorna a configuração do arquivo original (Windows-1252, vírgula, libra)
func DefaultConfig() Config {
	return Config{
		Encoding:        "windows-1252",
		Delimiter:       ',',
		CurrencySymbols: []string{"£", "$", "€"},
	}
}

// ParseStats contém estatísticas de uma leitura
type ParseStats struct {
	Rows           int
	MalformedRows  int // linhas com erro de sintaxe, mantidas só com valores padrão
	FallbackFields int
}

// Parser converte o conteúdo delimitado em registros de venda
type Parser struct {
	config   Config
	encoding encoding.Encoding
}

// NewParser cria um parser validando a codificação configurada
func NewParser(cfg Config) (*Parser, error) {
	defaults := DefaultConfig()
	if cfg.Delimiter == 0 {
		cfg.Delimiter = defaults.Delimiter
	}
	if cfg.CurrencySymbols == nil {
		cfg.CurrencySymbols = defaults.CurrencySymbols
	}

	enc, err := resolveEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	return &Parser{
		config:   cfg,
		encoding: enc,
	}, nil
}

func resolveEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		return charmap.Windows1252, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "%q", name)
	}
	return enc, nil
}

// header guarda o índice de cada coluna pelo nome normalizado
type header map[string]int

func newHeader(columns []string) header {
	h := make(header, len(columns))
	for i, column := range columns {
		if i == 0 {
			column = stripBOM(column)
		}
		key := normalizeColumn(column)
		if _, exists := h[key]; !exists {
			h[key] = i
		}
	}
	return h
}

func (h header) missing(required []string) []string {
	var missing []string
	for _, column := range required {
		if _, ok := h[normalizeColumn(column)]; !ok {
			missing = append(missing, column)
		}
	}
	return missing
}

// field retorna o valor da coluna na linha; ok=false quando a linha é curta
func (h header) field(row []string, column string) (string, bool) {
	i, ok := h[normalizeColumn(column)]
	if !ok || i >= len(row) {
		return "", false
	}
	return row[i], true
}

func normalizeColumn(column string) string {
	return strings.ToLower(strings.TrimSpace(column))
}

// stripBOM remove o BOM UTF-8, inclusive quando decodificado como Windows-1252
func stripBOM(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimPrefix(s, "\u00ef\u00bb\u00bf")
}

// Parse lê o cabeçalho e todas as linhas, na ordem do arquivo
func (p *Parser) Parse(ctx context.Context, r io.Reader) ([]domain.SalesRecord, *ParseStats, error) {
	reader := csv.NewReader(transform.NewReader(r, p.encoding.NewDecoder()))
	reader.Comma = p.config.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	columns, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, ErrEmptyFile
		}
		return nil, nil, errors.Wrap(err, "csvfile: erro ao ler cabeçalho")
	}

	h := newHeader(columns)
	if missing := h.missing(RequiredColumns); len(missing) > 0 {
		return nil, nil, errors.Wrapf(ErrMissingColumns, "%s", strings.Join(missing, ", "))
	}

	stats := &ParseStats{}
	records := make([]domain.SalesRecord, 0)
	line := 1

	for {
		if line%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++

		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, nil, errors.Wrap(err, "csvfile: erro ao ler linha")
			}
			stats.MalformedRows++
			log.L.WithFields(log.Fields{
				"line":  line,
				"error": err.Error(),
			}).Debug("csvfile: linha malformada, usando valores padrão")
			row = nil
		}

		record, fallbacks := p.parseRow(h, row)
		if fallbacks > 0 {
			stats.FallbackFields += fallbacks
			log.L.WithFields(log.Fields{
				"line":      line,
				"fallbacks": fallbacks,
			}).Debug("csvfile: valores padrão aplicados na linha")
		}

		records = append(records, record)
		stats.Rows++
	}

	return records, stats, nil
}

// parseRow monta o registro e retorna quantos campos caíram no valor padrão
func (p *Parser) parseRow(h header, row []string) (domain.SalesRecord, int) {
	fallbacks := 0

	decimalField := func(column string) decimal.Decimal {
		raw, present := h.field(row, column)
		value, ok := parseDecimal(raw, p.config.CurrencySymbols)
		if !present || !ok {
			fallbacks++
		}
		return value
	}

	rawDate, present := h.field(row, ColumnDate)
	date, ok := parseDate(rawDate)
	if !present || !ok {
		fallbacks++
	}

	record := domain.SalesRecord{
		Segment:            parseText(h.field(row, ColumnSegment)),
		Country:            parseText(h.field(row, ColumnCountry)),
		Product:            parseText(h.field(row, ColumnProduct)),
		DiscountBand:       parseText(h.field(row, ColumnDiscountBand)),
		UnitsSold:          decimalField(ColumnUnitsSold),
		ManufacturingPrice: decimalField(ColumnManufacturingPrice),
		SalePrice:          decimalField(ColumnSalePrice),
		Date:               date,
	}

	return record, fallbacks
}
