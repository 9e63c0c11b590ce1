// Package cmd implementa a linha de comando que gera relatórios diretamente do arquivo de vendas.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/datasource/csvfile"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// options são as flags globais compartilhadas por todos os subcomandos
type options struct {
	file            string
	encoding        string
	currencySymbols []string
	topN            int
	format          string
	verbose         bool
}

// Execute monta e executa o comando raiz
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd cria o comando raiz com todos os subcomandos
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "salesreport",
		Short: "Relatórios de vendas a partir do arquivo CSV",
		Long: `salesreport lê o arquivo de vendas e imprime o resumo e os agrupamentos
usados pelo painel, sem subir a API.

Exemplos:
  salesreport summary --file data/Data.csv
  salesreport aggregate --by country --top 5 --format json
  salesreport export --output vendas.xlsx`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Logs vão para stderr para não misturar com o relatório
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			log.Configure(log.Options{Level: level, Output: cmd.ErrOrStderr()})

			switch opts.format {
			case formatText, formatJSON:
			default:
				return fmt.Errorf("formato inválido %q: use text ou json", opts.format)
			}

			decimal.MarshalJSONWithoutQuotes = true
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "data/Data.csv", "arquivo de vendas")
	flags.StringVar(&opts.encoding, "encoding", "windows-1252", "codificação do arquivo")
	flags.StringSliceVar(&opts.currencySymbols, "currency-symbols", []string{"£", "$", "€"}, "símbolos de moeda removidos dos valores")
	flags.IntVar(&opts.topN, "top", reporting.DefaultTopN, "limite dos rankings por país e produto")
	flags.StringVarP(&opts.format, "format", "o", formatText, "formato de saída: text ou json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "exibe logs de carga")

	root.AddCommand(
		newSummaryCmd(opts),
		newAggregateCmd(opts),
		newExportCmd(opts),
	)

	return root
}

// newReporter monta o mesmo fluxo da API: loader -> cache -> serviço
func (o *options) newReporter() (reporting.SalesReporter, error) {
	symbols := make([]string, 0, len(o.currencySymbols))
	for _, s := range o.currencySymbols {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}

	loader, err := csvfile.NewFileLoader(o.file, csvfile.Config{
		Encoding:        o.encoding,
		CurrencySymbols: symbols,
	})
	if err != nil {
		return nil, err
	}

	datasetCache := cache.NewDatasetCache(loader, cache.Options{})

	return reporting.NewService(datasetCache, reporting.Config{TopN: o.topN}), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
