package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/cli"
	"github.com/meufuturo/futuro/internal/model"
)

func exportCmd() *cobra.Command {
	var (
		startDate  string
		endDate    string
		format     string
		txType     string
		categoryID string
		charts     bool
		destDir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a financial report",
		Long:  `Download a report covering the given period. Defaults to the current month as CSV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			now := time.Now()
			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			end := now
			if startDate != "" {
				if start, err = parseDate(startDate); err != nil {
					return err
				}
			}
			if endDate != "" {
				if end, err = parseDate(endDate); err != nil {
					return err
				}
			}
			if end.Before(start) {
				return fmt.Errorf("end date is before start date")
			}

			params := api.ExportParams{
				StartDate:     start,
				EndDate:       end,
				Format:        api.ExportFormat(format),
				CategoryID:    categoryID,
				IncludeCharts: charts,
			}
			if params.Type, err = parseTypeFilter(txType); err != nil {
				return err
			}
			switch params.Format {
			case api.ExportCSV, api.ExportXLSX, api.ExportPDF:
			default:
				return fmt.Errorf("invalid format %q (use csv, xlsx or pdf)", format)
			}

			path, err := client.ExportReport(cmd.Context(), params, destDir)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Report saved to " + path))
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD, default first of month)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&format, "format", string(api.ExportCSV), "report format (csv, xlsx, pdf)")
	cmd.Flags().StringVar(&txType, "type", "all", "transaction type (income, expense, all)")
	cmd.Flags().StringVar(&categoryID, "category", model.CategoryAll, "category id")
	cmd.Flags().BoolVar(&charts, "charts", false, "include charts (pdf only)")
	cmd.Flags().StringVar(&destDir, "dir", ".", "destination directory")

	return cmd
}
