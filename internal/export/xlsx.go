package export

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName é o nome da planilha gerada
const SheetName = "Sales"

// WriteXLSX gera uma planilha com as mesmas colunas do CSV.
// Valores numéricos são gravados como números, sem arredondamento, para permitir fórmulas.
func WriteXLSX(w io.Writer, records []domain.SalesRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.Wrap(err, "erro ao renomear planilha")
	}

	header := make([]any, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo")
	}
	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return errors.Wrap(err, "erro ao calcular última coluna")
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return errors.Wrap(err, "erro ao aplicar estilo")
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "erro ao calcular célula")
		}

		values := []any{
			record.Date.Format(time.DateOnly),
			record.Segment,
			record.Country,
			record.Product,
			record.DiscountBand,
			record.UnitsSold.InexactFloat64(),
			record.ManufacturingPrice.InexactFloat64(),
			record.SalePrice.InexactFloat64(),
			record.Revenue().InexactFloat64(),
			record.Profit().InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %d", i+2)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "erro ao gerar arquivo xlsx")
	}

	return nil
}
