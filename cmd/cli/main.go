package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/finledger/internal/adapter/http/dto"
)

var (
	baseURL    string
	timeout    time.Duration
	jsonOutput bool
)

// stdout is where commands print; tests swap it.
var stdout io.Writer = os.Stdout

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "finledger-cli",
		Short:         "finledger CLI tool",
		Long:          `A command line interface for interacting with the finledger API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the finledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	rootCmd.AddCommand(accountsCmd(), txCmd(), transferCmd(), reportCmd())

	return rootCmd
}

func client() *apiClient {
	return newAPIClient(baseURL, timeout)
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.ListAccountsResponse
			if err := client().get("/api/v1/accounts", nil, &resp); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}

			tw := newTable("ID", "NAME", "TYPE", "BALANCE")
			for _, a := range resp.Accounts {
				tw.row(a.ID, truncate(a.Name, 30), a.TypeLabel, money(a.Balance))
			}
			return tw.flush()
		},
	}

	var req dto.CreateAccountRequest
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]

			var account dto.AccountResponse
			if err := client().post("/api/v1/accounts", req, &account); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(account)
				return nil
			}

			fmt.Fprintf(stdout, "Created account %s (%s) with balance %s\n", account.ID, account.TypeLabel, money(account.Balance))
			return nil
		},
	}
	create.Flags().StringVar(&req.ID, "id", "", "Account ID (generated when empty)")
	create.Flags().StringVar(&req.Type, "type", "CHECKING", "Account type")
	create.Flags().StringVar(&req.InitialBalance, "balance", "0", "Initial balance")
	create.Flags().StringVar(&req.Description, "description", "", "Description")

	remove := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an account and its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client().delete("/api/v1/accounts/" + url.PathEscape(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Removed account %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, remove)
	return cmd
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	var req dto.CreateTransactionRequest
	add := &cobra.Command{
		Use:   "add ACCOUNT_ID TYPE AMOUNT DESCRIPTION",
		Short: "Record income or an expense",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.AccountID, req.Type, req.Amount, req.Description = args[0], args[1], args[2], args[3]

			var tx dto.TransactionResponse
			if err := client().post("/api/v1/transactions", req, &tx); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(tx)
				return nil
			}

			fmt.Fprintf(stdout, "Recorded %s %s %s on %s\n", tx.ID, tx.Type, money(tx.Amount), tx.AccountID)
			return nil
		},
	}
	add.Flags().StringVar(&req.Category, "category", "", "Category (required)")
	_ = add.MarkFlagRequired("category")

	var account string
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/transactions"
			query := url.Values{}
			if account != "" {
				path = "/api/v1/accounts/" + url.PathEscape(account) + "/transactions"
			} else if limit > 0 {
				query.Set("limit", strconv.Itoa(limit))
			}

			var resp dto.ListTransactionsResponse
			if err := client().get(path, query, &resp); err != nil {
				return err
			}
			return printTransactions(resp)
		},
	}
	list.Flags().StringVar(&account, "account", "", "Only this account, newest first")
	list.Flags().IntVar(&limit, "limit", 0, "Only the most recent N transactions")

	search := &cobra.Command{
		Use:   "search TERM",
		Short: "Search descriptions and category names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.ListTransactionsResponse
			if err := client().get("/api/v1/transactions", url.Values{"q": {args[0]}}, &resp); err != nil {
				return err
			}
			return printTransactions(resp)
		},
	}

	cmd.AddCommand(add, list, search)
	return cmd
}

func transferCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "transfer FROM TO AMOUNT",
		Short: "Move money between two accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.CreateTransferRequest{
				FromAccountID: args[0],
				ToAccountID:   args[1],
				Amount:        args[2],
				Description:   description,
			}

			var resp dto.TransferResponse
			if err := client().post("/api/v1/transfers", req, &resp); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}

			fmt.Fprintf(stdout, "Transferred %s from %s to %s (transfer %s)\n",
				money(resp.Debit.Amount), resp.Debit.AccountID, resp.Credit.AccountID, resp.TransferID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "Transfer", "Transfer description")

	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reports",
	}

	var month, year int
	period := func() url.Values {
		q := url.Values{}
		if month > 0 {
			q.Set("month", strconv.Itoa(month))
		}
		if year > 0 {
			q.Set("year", strconv.Itoa(year))
		}
		return q
	}

	balance := &cobra.Command{
		Use:   "balance",
		Short: "Total balance across accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.BalanceResponse
			if err := client().get("/api/v1/reports/balance", nil, &resp); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}
			fmt.Fprintf(stdout, "Total balance: %s\n", money(resp.TotalBalance))
			return nil
		},
	}

	monthly := &cobra.Command{
		Use:   "monthly",
		Short: "Income, expenses and net for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.MonthlySummaryResponse
			if err := client().get("/api/v1/reports/monthly", period(), &resp); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}

			tw := newTable("PERIOD", "INCOME", "EXPENSES", "NET")
			tw.row(fmt.Sprintf("%04d-%02d", resp.Year, resp.Month), money(resp.Income), money(resp.Expenses), money(resp.Net))
			return tw.flush()
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "Expenses by category for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.CategoryReportResponse
			if err := client().get("/api/v1/reports/categories", period(), &resp); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}
			return printCategoryAmounts(resp.Categories)
		},
	}

	for _, c := range []*cobra.Command{monthly, categories} {
		c.Flags().IntVar(&month, "month", 0, "Month 1-12 (default current)")
		c.Flags().IntVar(&year, "year", 0, "Year (default current)")
	}

	budget := &cobra.Command{
		Use:   "budget",
		Short: "Recommended monthly budget per expense category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.BudgetResponse
			if err := client().get("/api/v1/reports/budget", nil, &resp); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}
			return printCategoryAmounts(resp.Recommendations)
		},
	}

	var recent int
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if recent > 0 {
				query.Set("limit", strconv.Itoa(recent))
			}

			var resp dto.SummaryResponse
			if err := client().get("/api/v1/reports/summary", query, &resp); err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}

			fmt.Fprintf(stdout, "Total balance: %s\n\n", money(resp.TotalBalance))
			tw := newTable("ACCOUNT", "TYPE", "BALANCE")
			for _, a := range resp.Accounts {
				tw.row(truncate(a.Name, 30), a.TypeLabel, money(a.Balance))
			}
			if err := tw.flush(); err != nil {
				return err
			}

			fmt.Fprintln(stdout)
			return printTransactions(dto.ListTransactionsResponse{Transactions: resp.Recent, Total: int64(len(resp.Recent))})
		},
	}
	summary.Flags().IntVar(&recent, "recent", 0, "Number of recent transactions (default 10)")

	cmd.AddCommand(balance, monthly, categories, budget, summary)
	return cmd
}

func printTransactions(resp dto.ListTransactionsResponse) error {
	if jsonOutput {
		printJSON(resp)
		return nil
	}

	tw := newTable("DATE", "ACCOUNT", "DESCRIPTION", "CATEGORY", "AMOUNT")
	for _, tx := range resp.Transactions {
		tw.row(tx.Date.Format("2006-01-02"), tx.AccountID, truncate(tx.Description, 40), tx.CategoryLabel, money(tx.SignedAmount))
	}
	return tw.flush()
}

func printCategoryAmounts(lines []dto.CategoryAmount) error {
	tw := newTable("CATEGORY", "AMOUNT")
	for _, l := range lines {
		tw.row(l.Label, money(l.Amount))
	}
	return tw.flush()
}

type table struct {
	w *tabwriter.Writer
}

func newTable(headers ...string) *table {
	t := &table{w: tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)}
	t.row(headers...)
	return t
}

func (t *table) row(cols ...string) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, c)
	}
	fmt.Fprintln(t.w)
}

func (t *table) flush() error {
	return t.w.Flush()
}

// money renders an amount with two decimal places.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(stdout, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Fprintln(stdout, string(b))
}
