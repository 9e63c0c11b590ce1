package domain

import "time"

// SalesFilter define os filtros opcionais de consulta de vendas.
// Campos vazios ou nulos não filtram.
type SalesFilter struct {
	Segment      string     `json:"segment,omitempty"`
	Country      string     `json:"country,omitempty"`
	Product      string     `json:"product,omitempty"`
	DiscountBand string     `json:"discount_band,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// Matches verifica se o registro atende a todos os filtros informados
func (f *SalesFilter) Matches(r SalesRecord) bool {
	if f == nil {
		return true
	}
	if f.Segment != "" && r.Segment != f.Segment {
		return false
	}
	if f.Country != "" && r.Country != f.Country {
		return false
	}
	if f.Product != "" && r.Product != f.Product {
		return false
	}
	if f.DiscountBand != "" && r.DiscountBand != f.DiscountBand {
		return false
	}
	if f.StartDate != nil && r.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && r.Date.After(*f.EndDate) {
		return false
	}
	return true
}

// FilterOptions lista os valores distintos disponíveis para filtro
type FilterOptions struct {
	Segments      []string `json:"segments"`
	Countries     []string `json:"countries"`
	Products      []string `json:"products"`
	DiscountBands []string `json:"discount_bands"`
}
