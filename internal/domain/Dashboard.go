package domain

// Dashboard reúne todas as agregações exibidas no painel principal
type Dashboard struct {
	Summary             *SalesSummary   `json:"summary"`
	SalesBySegment      *GroupAggregate `json:"sales_by_segment"`
	SalesByCountry      *GroupAggregate `json:"sales_by_country"`
	SalesByProduct      *GroupAggregate `json:"sales_by_product"`
	SalesByMonth        *GroupAggregate `json:"sales_by_month"`
	SalesByDiscountBand *GroupAggregate `json:"sales_by_discount_band"`
	RecentSales         []SalesRecord   `json:"recent_sales"`
}
