package domain

import "github.com/shopspring/decimal"

// SalesSummary contém as estatísticas gerais do conjunto de vendas.
// Para um conjunto vazio todos os valores são zero.
type SalesSummary struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	TotalUnitsSold    decimal.Decimal `json:"total_units_sold"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	OrderCount        int             `json:"order_count"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
}
