package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/cli"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse categories",
	}

	cmd.AddCommand(listCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var (
		includeSystem        bool
		includeSubcategories bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `Display the categories available for classifying transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			categories, err := client.GetCategories(cmd.Context(), api.CategoryParams{
				IncludeSystem:        includeSystem,
				IncludeSubcategories: includeSubcategories,
			})
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 24),
				strings.Repeat("-", 8))

			for _, cat := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					viewmodel.TruncateString(cat.ID, 8),
					cat.Name,
					string(cat.Type))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&includeSystem, "system", true, "include system categories")
	cmd.Flags().BoolVar(&includeSubcategories, "subcategories", false, "include subcategories")

	return cmd
}
