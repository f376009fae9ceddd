package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"household-budget/internal/dashboard"
	"household-budget/internal/dto"
	"household-budget/internal/models"
	"household-budget/internal/validation"

	"github.com/spf13/cobra"
)

func healthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend and its database are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.client.Health(cmd.Context())
			if err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("%s (%s) %s", a.client.BaseURL(), status.Status, status.Time))
			return nil
		},
	}
}

func summaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly budget summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sourceFlag, _ := cmd.Flags().GetString("source")
			source, err := models.ParseBudgetSource(sourceFlag)
			if err != nil {
				return a.fail(err)
			}

			month := a.month(cmd)
			if !models.IsValidMonthKey(month) {
				return a.fail(models.ErrInvalidMonthKey)
			}

			summary, err := a.client.Summary(cmd.Context(), month, source)
			if err != nil {
				return a.fail(err)
			}
			a.render.Summary(summary)
			return nil
		},
	}
	cmd.Flags().String("month", "", "month as YYYY-MM (default: current month)")
	cmd.Flags().String("source", string(models.BudgetSourceLegacy), "budget source: legacy or linked")
	return cmd
}

func budgetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "List the month's free-text category budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month := a.month(cmd)
			budgets, err := a.client.ListBudgets(cmd.Context(), month)
			if err != nil {
				return a.fail(err)
			}
			a.render.Budgets(month, budgets)
			return nil
		},
	}
	cmd.PersistentFlags().String("month", "", "month as YYYY-MM (default: current month)")

	set := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Create or replace a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return a.fail(err)
			}

			req := dto.UpsertBudgetRequest{Month: a.month(cmd), Category: args[0], Amount: &amount}
			if err := validateRequest(req); err != nil {
				return a.fail(err)
			}

			budget, err := a.client.UpsertBudget(cmd.Context(), req.Month, req.Category, amount)
			if err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("予算を保存しました: %s %s %s", budget.Month, budget.Category, dashboard.FormatYen(budget.Amount)))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return a.fail(err)
			}
			if err := a.client.DeleteBudget(cmd.Context(), id); err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("予算 #%d を削除しました", id))
			return nil
		},
	}

	cmd.AddCommand(set, del)
	return cmd
}

func monthlyBudgetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "monthly-budgets",
		Aliases: []string{"mb"},
		Short:   "List the month's catalog-linked budgets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month := a.month(cmd)
			categoryType, _ := cmd.Flags().GetString("type")

			details, err := a.client.ListMonthlyBudgets(cmd.Context(), month, categoryType)
			if err != nil {
				return a.fail(err)
			}
			a.render.MonthlyBudgets(month, details)
			return nil
		},
	}
	cmd.PersistentFlags().String("month", "", "month as YYYY-MM (default: current month)")
	cmd.Flags().String("type", "", "category type filter: fixed, variable, lifestyle, event")

	set := &cobra.Command{
		Use:   "set <category-id> <amount>",
		Short: "Create or replace a linked budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return a.fail(err)
			}

			req := dto.UpsertMonthlyBudgetRequest{Month: a.month(cmd), CategoryID: args[0], Amount: &amount}
			if err := validateRequest(req); err != nil {
				return a.fail(err)
			}

			monthlyBudget, err := a.client.UpsertMonthlyBudget(cmd.Context(), req.Month, req.CategoryID, amount)
			if err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("予算を保存しました: %s %s %s", monthlyBudget.Month, monthlyBudget.CategoryID, dashboard.FormatYen(monthlyBudget.Amount)))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a linked budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return a.fail(err)
			}
			if err := a.client.DeleteMonthlyBudget(cmd.Context(), id); err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("予算 #%d を削除しました", id))
			return nil
		},
	}

	total := &cobra.Command{
		Use:   "total",
		Short: "Show the month's summed linked budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			total, err := a.client.MonthlyBudgetTotal(cmd.Context(), a.month(cmd))
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s の予算合計: %s\n", dashboard.FormatMonth(total.Month), dashboard.FormatYen(total.TotalBudget))
			return nil
		},
	}

	seed := &cobra.Command{
		Use:   "seed-defaults",
		Short: "Insert the default budget set for the month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.SeedDefaultBudgets(cmd.Context(), a.month(cmd))
			if err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("%s にデフォルト予算を %d件 追加しました", dashboard.FormatMonth(resp.Month), resp.Inserted))
			return nil
		},
	}

	cmd.AddCommand(set, del, total, seed)
	return cmd
}

func expensesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List expenses of a month, optionally for one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")

			expenses, err := a.client.ListExpenses(cmd.Context(), a.month(cmd), category)
			if err != nil {
				return a.fail(err)
			}
			a.render.Expenses(expenses)
			return nil
		},
	}
	cmd.PersistentFlags().String("month", "", "month as YYYY-MM (default: current month)")
	cmd.Flags().String("category", "", "category filter")

	add := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return a.fail(err)
			}

			date, _ := cmd.Flags().GetString("date")
			req := dto.RecordExpenseRequest{Date: date, Category: args[0], Amount: &amount}
			if memo, _ := cmd.Flags().GetString("memo"); memo != "" {
				req.Memo = &memo
			}
			if err := validateRequest(req); err != nil {
				return a.fail(err)
			}

			expense, err := a.client.RecordExpense(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("支出を記録しました: #%d %s %s %s", expense.ID, expense.Date, expense.Category, dashboard.FormatYen(expense.Amount)))
			return nil
		},
	}
	add.Flags().String("date", "", "date as YYYY-MM-DD (default: today on the server)")
	add.Flags().String("memo", "", "free-text memo")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return a.fail(err)
			}
			if err := a.client.DeleteExpense(cmd.Context(), id); err != nil {
				return a.fail(err)
			}
			a.render.Success(fmt.Sprintf("支出 #%d を削除しました", id))
			return nil
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show spending per category for the month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month := a.month(cmd)
			stats, err := a.client.ExpenseStatistics(cmd.Context(), month)
			if err != nil {
				return a.fail(err)
			}
			a.render.Statistics(month, stats)
			return nil
		},
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Download the month's expenses as an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month := a.month(cmd)
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = fmt.Sprintf("expenses_%s.xlsx", month)
			}

			f, err := os.Create(output)
			if err != nil {
				return a.fail(err)
			}

			exportErr := a.client.ExportExpenses(cmd.Context(), month, f)
			closeErr := f.Close()
			if exportErr != nil {
				_ = os.Remove(output)
				return a.fail(exportErr)
			}
			if closeErr != nil {
				return a.fail(closeErr)
			}

			a.render.Success("書き出しました: " + output)
			return nil
		},
	}
	export.Flags().StringP("output", "o", "", "output file (default: expenses_<month>.xlsx)")

	sample := &cobra.Command{
		Use:   "sample",
		Short: "Fill the month with sample expenses (development servers only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month := a.month(cmd)
			count, _ := cmd.Flags().GetInt("count")
			if err := validateRequest(dto.GenerateSampleExpensesQuery{Month: month, Count: count}); err != nil {
				return a.fail(err)
			}

			resp, err := a.client.GenerateSampleExpenses(cmd.Context(), month, count)
			if err != nil {
				return a.fail(err)
			}
			msg := fmt.Sprintf("%sのサンプル支出を%d件作成しました", dashboard.FormatMonth(resp.Month), resp.Created)
			if resp.Failed > 0 {
				msg += fmt.Sprintf(" (失敗 %d件)", resp.Failed)
			}
			a.render.Success(msg)
			return nil
		},
	}
	sample.Flags().Int("count", 0, "number of expenses (default: server default, max 500)")

	cmd.AddCommand(add, del, stats, export, sample)
	return cmd
}

func categoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categoryType, _ := cmd.Flags().GetString("type")

			categories, err := a.client.ListCategories(cmd.Context(), categoryType)
			if err != nil {
				return a.fail(err)
			}
			a.render.Categories(categories)
			return nil
		},
	}
	cmd.Flags().String("type", "", "category type filter: fixed, variable, lifestyle, event")
	return cmd
}

func syncCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "sync <legacy-to-linked|linked-to-legacy>",
		Short:     "Copy budgets between the legacy and linked tables",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"legacy-to-linked", "linked-to-legacy"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				stats *models.SyncStats
				err   error
			)
			if args[0] == "legacy-to-linked" {
				stats, err = a.client.SyncLegacyToLinked(cmd.Context())
			} else {
				stats, err = a.client.SyncLinkedToLegacy(cmd.Context())
			}
			if err != nil {
				return a.fail(err)
			}
			a.render.SyncStats(args[0], stats)
			return nil
		},
	}
	return cmd
}

func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Report budgets whose category is missing from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := a.client.Verify(cmd.Context())
			if err != nil {
				return a.fail(err)
			}
			a.render.CompatibilityReport(report)
			return nil
		},
	}
}

func parseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("金額は整数で入力してください: %q", s)
	}
	return amount, nil
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("IDは正の整数で入力してください: %q", s)
	}
	return uint(id), nil
}

// validateRequest runs the same checks the backend runs before anything is sent
func validateRequest(req any) error {
	if err := validation.GetValidator().Struct(req); err != nil {
		return fmt.Errorf("入力エラー: %s", strings.Join(validation.FormatErrors(err), "; "))
	}
	return nil
}
