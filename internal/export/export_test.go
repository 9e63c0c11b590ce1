package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{
			Segment:            "Government",
			Country:            "Canada",
			Product:            "Carretera",
			DiscountBand:       "None",
			UnitsSold:          decimal.RequireFromString("1618.5"),
			ManufacturingPrice: decimal.NewFromInt(3),
			SalePrice:          decimal.NewFromInt(20),
			Date:               time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Segment:            "Small Business",
			Country:            `Korea, "South"`,
			Product:            "Paseo\nPlus",
			DiscountBand:       "",
			UnitsSold:          decimal.NewFromInt(2),
			ManufacturingPrice: decimal.NewFromInt(10),
			SalePrice:          decimal.NewFromInt(8),
			Date:               time.Date(2013, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestEscapeField(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"", ""},
		{"Canada", "Canada"},
		{"Korea, South", `"Korea, South"`},
		{`Say "hi"`, `"Say ""hi"""`},
		{"linha\nnova", "\"linha\nnova\""},
		{"sem aspas ' simples", "sem aspas ' simples"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, EscapeField(tt.input))
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	expected := "Date,Segment,Country,Product,DiscountBand,UnitsSold,ManufacturingPrice,SalePrice,Revenue,Profit\n" +
		"2014-01-01,Government,Canada,Carretera,None,1618.5,3,20,32370,27514.5\n" +
		"2013-12-31,Small Business,\"Korea, \"\"South\"\"\",\"Paseo\nPlus\",,2,10,8,16,-4\n"

	assert.Equal(t, expected, buf.String())
}

func TestWriteCSV_OnlyHeaderWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Segment,Country,Product,DiscountBand,UnitsSold,ManufacturingPrice,SalePrice,Revenue,Profit\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disco cheio")
}

func TestWriteCSV_WriterError(t *testing.T) {
	assert.Error(t, WriteCSV(failingWriter{}, sampleRecords()))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRecords()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "2014-01-01", rows[1][0])
	assert.Equal(t, "Carretera", rows[1][3])
	assert.Equal(t, "32370", rows[1][8])
	assert.Equal(t, `Korea, "South"`, rows[2][2])
	assert.Equal(t, "-4", rows[2][9])
}

func TestWriteXLSX_KeepsDecimalPrecision(t *testing.T) {
	records := []domain.SalesRecord{
		{
			Segment:            "Channel Partners",
			Country:            "France",
			Product:            "Velo",
			DiscountBand:       "Low",
			UnitsSold:          decimal.NewFromInt(3),
			ManufacturingPrice: decimal.RequireFromString("0.001"),
			SalePrice:          decimal.RequireFromString("0.125"),
			Date:               time.Date(2014, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	tests := []struct {
		cell   string
		expect string
	}{
		{"G2", "0.001"},
		{"H2", "0.125"},
		{"I2", "0.375"},
		{"J2", "0.372"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			value, err := f.GetCellValue(SheetName, tt.cell, excelize.Options{RawCellValue: true})
			require.NoError(t, err)
			assert.Equal(t, tt.expect, value)
		})
	}
}
