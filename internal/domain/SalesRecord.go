// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord representa uma linha do arquivo de vendas.
// Os campos derivados (receita, custo, lucro, margem e partes do calendário)
// são sempre calculados a partir dos campos armazenados.
type SalesRecord struct {
	Segment            string
	Country            string
	Product            string
	DiscountBand       string
	UnitsSold          decimal.Decimal
	ManufacturingPrice decimal.Decimal
	SalePrice          decimal.Decimal
	Date               time.Time
}

// Revenue retorna UnitsSold * SalePrice
func (r SalesRecord) Revenue() decimal.Decimal {
	return r.UnitsSold.Mul(r.SalePrice)
}

// Cost retorna UnitsSold * ManufacturingPrice
func (r SalesRecord) Cost() decimal.Decimal {
	return r.UnitsSold.Mul(r.ManufacturingPrice)
}

// Profit retorna Revenue - Cost
func (r SalesRecord) Profit() decimal.Decimal {
	return r.Revenue().Sub(r.Cost())
}

// ProfitMargin retorna Profit / Revenue, ou zero quando a receita não é positiva
func (r SalesRecord) ProfitMargin() decimal.Decimal {
	revenue := r.Revenue()
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return r.Profit().Div(revenue)
}

func (r SalesRecord) Year() int {
	return r.Date.Year()
}

func (r SalesRecord) Month() int {
	return int(r.Date.Month())
}

// Quarter retorna o trimestre da venda (1-4)
func (r SalesRecord) Quarter() int {
	return (r.Month()-1)/3 + 1
}

// MonthKey retorna a chave composta (ano, mês) da venda
func (r SalesRecord) MonthKey() MonthKey {
	return MonthKey{Year: r.Year(), Month: r.Month()}
}

type salesRecordJSON struct {
	Segment            string          `json:"segment"`
	Country            string          `json:"country"`
	Product            string          `json:"product"`
	DiscountBand       string          `json:"discount_band"`
	UnitsSold          decimal.Decimal `json:"units_sold"`
	ManufacturingPrice decimal.Decimal `json:"manufacturing_price"`
	SalePrice          decimal.Decimal `json:"sale_price"`
	Date               string          `json:"date"`
	Revenue            decimal.Decimal `json:"revenue"`
	Cost               decimal.Decimal `json:"cost"`
	Profit             decimal.Decimal `json:"profit"`
	ProfitMargin       decimal.Decimal `json:"profit_margin"`
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	Quarter            int             `json:"quarter"`
}

// MarshalJSON inclui os campos derivados na serialização
func (r SalesRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(salesRecordJSON{
		Segment:            r.Segment,
		Country:            r.Country,
		Product:            r.Product,
		DiscountBand:       r.DiscountBand,
		UnitsSold:          r.UnitsSold,
		ManufacturingPrice: r.ManufacturingPrice,
		SalePrice:          r.SalePrice,
		Date:               r.Date.Format(time.DateOnly),
		Revenue:            r.Revenue(),
		Cost:               r.Cost(),
		Profit:             r.Profit(),
		ProfitMargin:       r.ProfitMargin(),
		Year:               r.Year(),
		Month:              r.Month(),
		Quarter:            r.Quarter(),
	})
}
