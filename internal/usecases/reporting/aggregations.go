package reporting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	// DefaultTopN é o limite de grupos dos rankings por país e produto
	DefaultTopN = 10

	unknownSegmentKey   = "Unknown"
	noneDiscountBandKey = "None"
)

// Summarize calcula as estatísticas gerais. Um conjunto vazio gera um resumo zerado.
func Summarize(records []domain.SalesRecord) *domain.SalesSummary {
	summary := &domain.SalesSummary{
		TotalRevenue:      decimal.Zero,
		TotalProfit:       decimal.Zero,
		TotalUnitsSold:    decimal.Zero,
		AverageOrderValue: decimal.Zero,
		ProfitMargin:      decimal.Zero,
	}

	for _, r := range records {
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Revenue())
		summary.TotalProfit = summary.TotalProfit.Add(r.Profit())
		summary.TotalUnitsSold = summary.TotalUnitsSold.Add(r.UnitsSold)
	}
	summary.OrderCount = len(records)

	if summary.OrderCount > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.Div(decimal.NewFromInt(int64(summary.OrderCount)))
	}
	if summary.TotalRevenue.IsPositive() {
		summary.ProfitMargin = summary.TotalProfit.Div(summary.TotalRevenue)
	}

	return summary
}

// groupBy soma a receita por chave na ordem em que cada chave aparece
func groupBy(records []domain.SalesRecord, key func(domain.SalesRecord) string) *domain.GroupAggregate {
	groups := domain.NewGroupAggregate()
	for _, r := range records {
		groups.Add(key(r), r.Revenue())
	}
	return groups
}

// topByRevenue ordena por receita decrescente e mantém os n primeiros.
// Empates mantêm a ordem do primeiro registro de cada grupo.
func topByRevenue(groups *domain.GroupAggregate, n int) *domain.GroupAggregate {
	groups.SortStable(func(a, b domain.GroupEntry) bool {
		return a.Revenue.GreaterThan(b.Revenue)
	})
	groups.Truncate(n)
	return groups
}

func withFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// BySegment agrupa por segmento; segmento vazio vira "Unknown"
func BySegment(records []domain.SalesRecord) *domain.GroupAggregate {
	return groupBy(records, func(r domain.SalesRecord) string {
		return withFallback(r.Segment, unknownSegmentKey)
	})
}

// ByDiscountBand agrupa por faixa de desconto; faixa vazia vira "None"
func ByDiscountBand(records []domain.SalesRecord) *domain.GroupAggregate {
	return groupBy(records, func(r domain.SalesRecord) string {
		return withFallback(r.DiscountBand, noneDiscountBandKey)
	})
}

// ByCountry retorna os n países com maior receita
func ByCountry(records []domain.SalesRecord, n int) *domain.GroupAggregate {
	groups := groupBy(records, func(r domain.SalesRecord) string {
		return r.Country
	})
	return topByRevenue(groups, n)
}

// ByProduct retorna os n produtos com maior receita
func ByProduct(records []domain.SalesRecord, n int) *domain.GroupAggregate {
	groups := groupBy(records, func(r domain.SalesRecord) string {
		return r.Product
	})
	return topByRevenue(groups, n)
}

// ByMonth agrupa por (ano, mês) em ordem cronológica, com chaves "YYYY-MM"
func ByMonth(records []domain.SalesRecord) *domain.GroupAggregate {
	totals := make(map[domain.MonthKey]decimal.Decimal)
	keys := make([]domain.MonthKey, 0)

	for _, r := range records {
		key := r.MonthKey()
		total, exists := totals[key]
		if !exists {
			keys = append(keys, key)
			total = decimal.Zero
		}
		totals[key] = total.Add(r.Revenue())
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Before(keys[j])
	})

	groups := domain.NewGroupAggregate()
	for _, key := range keys {
		groups.Add(key.String(), totals[key])
	}
	return groups
}

// RecentSales retorna os n registros mais recentes, do mais novo para o mais antigo
func RecentSales(records []domain.SalesRecord, n int) []domain.SalesRecord {
	sorted := make([]domain.SalesRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Filter retorna os registros que atendem ao filtro, na ordem original
func Filter(records []domain.SalesRecord, filter *domain.SalesFilter) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0)
	for _, r := range records {
		if filter.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// DistinctOptions lista os valores distintos de cada dimensão, ordenados.
// Faixas de desconto vazias não entram na lista.
func DistinctOptions(records []domain.SalesRecord) *domain.FilterOptions {
	segments := make(map[string]struct{})
	countries := make(map[string]struct{})
	products := make(map[string]struct{})
	bands := make(map[string]struct{})

	for _, r := range records {
		segments[r.Segment] = struct{}{}
		countries[r.Country] = struct{}{}
		products[r.Product] = struct{}{}
		if r.DiscountBand != "" {
			bands[r.DiscountBand] = struct{}{}
		}
	}

	return &domain.FilterOptions{
		Segments:      sortedKeys(segments),
		Countries:     sortedKeys(countries),
		Products:      sortedKeys(products),
		DiscountBands: sortedKeys(bands),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
