package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// dimensions são os valores aceitos por --by
var dimensions = []string{"segment", "country", "product", "month", "discount-band"}

// aggregateFor retorna o agrupamento do serviço para a dimensão informada
func aggregateFor(s reporting.SalesReporter, by string) func(context.Context) (*domain.GroupAggregate, error) {
	switch by {
	case "country":
		return s.GetByCountry
	case "product":
		return s.GetByProduct
	case "month":
		return s.GetByMonth
	case "discount-band":
		return s.GetByDiscountBand
	default:
		return s.GetBySegment
	}
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Imprime o resumo geral das vendas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter, err := opts.newReporter()
			if err != nil {
				return err
			}

			summary, err := reporter.GetSummary(commandContext(cmd))
			if err != nil {
				return err
			}

			if opts.format == formatJSON {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(summary))
				return nil
			}

			return writeSummary(cmd.OutOrStdout(), summary)
		},
	}
}

func newAggregateCmd(opts *options) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Imprime a receita agrupada por uma dimensão",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(dimensions, by) {
				return fmt.Errorf("dimensão inválida %q: use %s", by, strings.Join(dimensions, ", "))
			}

			reporter, err := opts.newReporter()
			if err != nil {
				return err
			}

			aggregate, err := aggregateFor(reporter, by)(commandContext(cmd))
			if err != nil {
				return err
			}

			if opts.format == formatJSON {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(aggregate))
				return nil
			}

			return writeAggregate(cmd.OutOrStdout(), by, aggregate)
		},
	}

	cmd.Flags().StringVar(&by, "by", "segment", "dimensão: segment, country, product, month ou discount-band")

	return cmd
}

func writeSummary(w io.Writer, summary *domain.SalesSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Receita total\t%s\n", summary.TotalRevenue.StringFixed(2))
	fmt.Fprintf(tw, "Lucro total\t%s\n", summary.TotalProfit.StringFixed(2))
	fmt.Fprintf(tw, "Unidades vendidas\t%s\n", summary.TotalUnitsSold.String())
	fmt.Fprintf(tw, "Vendas\t%d\n", summary.OrderCount)
	fmt.Fprintf(tw, "Ticket médio\t%s\n", summary.AverageOrderValue.StringFixed(2))
	fmt.Fprintf(tw, "Margem de lucro\t%s%%\n", summary.ProfitMargin.Shift(2).StringFixed(2))
	return tw.Flush()
}

func writeAggregate(w io.Writer, by string, aggregate *domain.GroupAggregate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tREVENUE\n", strings.ToUpper(by))
	for _, entry := range aggregate.Entries() {
		fmt.Fprintf(tw, "%s\t%s\n", entry.Key, entry.Revenue.StringFixed(2))
	}
	return tw.Flush()
}
