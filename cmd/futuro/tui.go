package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meufuturo/futuro/internal/tui"
)

func tuiCmd() *cobra.Command {
	var (
		exportDir string
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse transactions interactively",
		Long:  `Open the full-screen transaction browser with live filtering and editing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if pageSize == 0 {
				pageSize = viper.GetInt("tui.page_size")
			}

			return tui.Run(cmd.Context(), tui.RunConfig{
				Client:    client,
				ExportDir: exportDir,
				PageSize:  pageSize,
			})
		},
	}

	cmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory for exported reports")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "transactions per page")

	return cmd
}
