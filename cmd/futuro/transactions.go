package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/cli"
	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, add, edit, remove and duplicate transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(removeTransactionCmd())
	cmd.AddCommand(duplicateTransactionCmd())
	cmd.AddCommand(summaryTransactionsCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		search     string
		txType     string
		categoryID string
		startDate  string
		endDate    string
		minAmount  float64
		maxAmount  float64
		sortBy     string
		sortOrder  string
		page       int
		size       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display one filtered page of transactions with its totals.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			filters := model.DefaultFilters()
			filters.Search = search
			filters.CategoryID = categoryID

			if filters.Type, err = parseTypeFilter(txType); err != nil {
				return err
			}
			if startDate != "" && endDate != "" {
				start, err := parseDate(startDate)
				if err != nil {
					return err
				}
				end, err := parseDate(endDate)
				if err != nil {
					return err
				}
				filters.DateRange = &model.DateRange{Start: start, End: end}
			} else if startDate != "" || endDate != "" {
				return fmt.Errorf("--start and --end must be used together")
			}
			if cmd.Flags().Changed("min") {
				filters.AmountRange.Min = &minAmount
			}
			if cmd.Flags().Changed("max") {
				filters.AmountRange.Max = &maxAmount
			}
			if sortBy != "" {
				filters.SortBy = model.SortField(sortBy)
			}
			if sortOrder != "" {
				filters.SortOrder = model.SortOrder(sortOrder)
			}

			result, err := client.ListTransactions(cmd.Context(), api.ListParams{
				Filters: filters,
				Page:    page,
				Size:    size,
			})
			if err != nil {
				return err
			}

			if len(result.Items) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			printTransactionTable(result.Items)

			stats := model.ComputeStats(result.Items)
			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render(viewmodel.PageSummary(result.Pagination)))
			fmt.Printf("%s %s  %s %s  %s %s\n",
				cli.SubtleStyle.Render("receitas"),
				cli.IncomeStyle.Render(viewmodel.FormatAmount(stats.TotalIncome)),
				cli.SubtleStyle.Render("despesas"),
				cli.ExpenseStyle.Render(viewmodel.FormatAmount(stats.TotalExpenses)),
				cli.SubtleStyle.Render("saldo"),
				viewmodel.FormatAmount(stats.NetAmount))

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free text search")
	cmd.Flags().StringVar(&txType, "type", "all", "transaction type (income, expense, all)")
	cmd.Flags().StringVar(&categoryID, "category", model.CategoryAll, "category id")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&minAmount, "min", 0, "minimum amount")
	cmd.Flags().Float64Var(&maxAmount, "max", 0, "maximum amount")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field (transaction_date, amount, description, created_at)")
	cmd.Flags().StringVar(&sortOrder, "order", "", "sort order (asc, desc)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&size, "size", model.DefaultPageSize, "page size")

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		txType      string
		amount      string
		description string
		date        string
		categoryID  string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			input := api.TransactionInput{
				Description: description,
				CategoryID:  categoryID,
				Notes:       notes,
			}
			if input.Type, err = parseTransactionType(txType); err != nil {
				return err
			}
			if input.Amount, err = parseAmount(amount); err != nil {
				return err
			}
			input.TransactionDate = date
			if date == "" {
				input.TransactionDate = time.Now().Format(model.DateOnly)
			} else if _, err := parseDate(date); err != nil {
				return err
			}

			created, err := client.CreateTransaction(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Transaction created: %s (%s)",
				created.Description, viewmodel.FormatSignedAmount(*created))))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func editTransactionCmd() *cobra.Command {
	var (
		txType      string
		amount      string
		description string
		date        string
		categoryID  string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long:  `Apply a partial update: only the provided flags change.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var patch api.TransactionPatch
			if cmd.Flags().Changed("type") {
				parsed, err := parseTransactionType(txType)
				if err != nil {
					return err
				}
				patch.Type = &parsed
			}
			if cmd.Flags().Changed("amount") {
				parsed, err := parseAmount(amount)
				if err != nil {
					return err
				}
				patch.Amount = &parsed
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				if _, err := parseDate(date); err != nil {
					return err
				}
				patch.TransactionDate = &date
			}
			if cmd.Flags().Changed("category") {
				patch.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			updated, err := client.UpdateTransaction(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Transaction updated: %s (%s)",
				updated.Description, viewmodel.FormatSignedAmount(*updated))))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "transaction type (income, expense)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func removeTransactionCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			tx, err := client.GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !skipConfirm {
				reader := cli.NewReader(os.Stdin)
				prompt := fmt.Sprintf("Remove %q (%s)?", tx.Description, viewmodel.FormatSignedAmount(*tx))
				confirmed, err := reader.Confirm(cmd.Context(), os.Stdout, prompt)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(cli.InfoStyle.Render("Canceled."))
					return nil
				}
			}

			if err := client.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Transaction removed"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip confirmation")

	return cmd
}

func duplicateTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Duplicate a transaction",
		Long:  `Create a copy of an existing transaction dated today.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			tx, err := client.GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			created, err := client.CreateTransaction(cmd.Context(), api.DuplicateInput(*tx, time.Now()))
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Transaction duplicated: %s", created.Description)))
			return nil
		},
	}
}

func summaryTransactionsCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show period totals",
		Long:  `Display server-side totals covering every transaction in the period, not just one page.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var params api.SummaryParams
			if startDate != "" {
				if params.StartDate, err = parseDate(startDate); err != nil {
					return err
				}
			}
			if endDate != "" {
				if params.EndDate, err = parseDate(endDate); err != nil {
					return err
				}
			}

			summary, err := client.GetTransactionSummary(cmd.Context(), params)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s (%d)\n", "Receitas",
				cli.IncomeStyle.Render(viewmodel.FormatAmount(summary.TotalIncome.Float64())), summary.IncomeCount)
			fmt.Fprintf(w, "%s\t%s (%d)\n", "Despesas",
				cli.ExpenseStyle.Render(viewmodel.FormatAmount(summary.TotalExpenses.Float64())), summary.ExpenseCount)
			fmt.Fprintf(w, "%s\t%s\n", "Saldo", viewmodel.FormatAmount(summary.NetAmount.Float64()))
			fmt.Fprintf(w, "%s\t%s\n", "Média", viewmodel.FormatAmount(summary.AverageTransaction.Float64()))
			if summary.LargestIncome != nil {
				fmt.Fprintf(w, "%s\t%s\n", "Maior receita", viewmodel.FormatAmount(summary.LargestIncome.Float64()))
			}
			if summary.LargestExpense != nil {
				fmt.Fprintf(w, "%s\t%s\n", "Maior despesa", viewmodel.FormatAmount(summary.LargestExpense.Float64()))
			}
			fmt.Fprintf(w, "%s\t%d\n", "Lançamentos", summary.TransactionCount)

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")

	return cmd
}

// printTransactionTable renders transactions as an aligned table.
func printTransactionTable(transactions []model.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Description"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Type"),
		cli.HeaderStyle.Render("Amount"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8),
		strings.Repeat("-", 10),
		strings.Repeat("-", 30),
		strings.Repeat("-", 18),
		strings.Repeat("-", 8),
		strings.Repeat("-", 14))

	for _, tx := range transactions {
		amountStyle := cli.IncomeStyle
		if tx.Type == model.TypeExpense {
			amountStyle = cli.ExpenseStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			viewmodel.TruncateString(tx.ID, 8),
			tx.TransactionDate,
			viewmodel.TruncateString(tx.Description, 30),
			viewmodel.TruncateString(tx.CategoryName(), 18),
			viewmodel.TypeLabel(tx.Type),
			amountStyle.Render(viewmodel.FormatSignedAmount(tx)))
	}
}
