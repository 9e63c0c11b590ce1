package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/export"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func newExportCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta os registros para CSV ou XLSX",
		Long: `Exporta todos os registros com receita e lucro calculados.
O formato é definido pela extensão do arquivo de saída (.csv ou .xlsx).
Sem --output o arquivo é criado no diretório atual como sales_export_YYYYMMDD.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = utils.ExportFileName(export.FilePrefix, time.Now(), "csv")
			}

			write := export.WriteCSV
			switch strings.ToLower(filepath.Ext(output)) {
			case ".csv":
			case ".xlsx":
				write = export.WriteXLSX
			default:
				return fmt.Errorf("extensão não suportada em %q: use .csv ou .xlsx", output)
			}

			reporter, err := opts.newReporter()
			if err != nil {
				return err
			}

			records, err := reporter.GetAllRecords(commandContext(cmd))
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("erro ao criar arquivo de saída: %w", err)
			}

			if err := write(file, records); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("erro ao finalizar arquivo de saída: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d registros exportados para %s\n", len(records), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "arquivo de saída (.csv ou .xlsx)")

	return cmd
}
