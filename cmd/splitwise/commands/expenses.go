package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// NewExpensesCommand creates the expenses command group.
func NewExpensesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expenses",
	}

	cmd.AddCommand(newExpensesListCommand())
	cmd.AddCommand(newExpensesCreateCommand())
	cmd.AddCommand(newExpensesDeleteCommand())

	return cmd
}

func newExpensesListCommand() *cobra.Command {
	var (
		groupID  int64
		friendID int64
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			expenses, err := client.Expenses().List(cmd.Context(), &splitwise.ExpenseListOptions{
				GroupID:  groupID,
				FriendID: friendID,
				Limit:    limit,
			})
			if err != nil {
				return fmt.Errorf("listing expenses: %w", err)
			}

			if handled, err := renderStructured(expenses); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Date", "Description", "Cost", "Currency")

			for _, expense := range expenses {
				if expense.DeletedAt != nil {
					continue
				}

				_ = table.Append(
					strconv.FormatInt(expense.ID, 10),
					expense.Date.Format("2006-01-02"),
					expense.Description,
					expense.Cost,
					expense.CurrencyCode,
				)
			}

			_ = table.Render()

			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "group", 0, "only expenses of this group")
	cmd.Flags().Int64Var(&friendID, "friend", 0, "only expenses shared with this friend")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of expenses")

	return cmd
}

func newExpensesCreateCommand() *cobra.Command {
	var (
		groupID  int64
		currency string
		payment  bool
	)

	cmd := &cobra.Command{
		Use:   "create COST DESCRIPTION",
		Short: "Record an expense split equally across a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupID == 0 {
				return ErrGroupIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			expenses, err := client.Expenses().Create(cmd.Context(), &splitwise.ExpenseCreateRequest{
				Cost:         args[0],
				Description:  args[1],
				GroupID:      groupID,
				SplitEqually: true,
				Payment:      payment,
				CurrencyCode: currency,
			})
			if err != nil {
				return fmt.Errorf("creating expense: %w", err)
			}

			for _, expense := range expenses {
				fmt.Printf("Created expense %d: %s (%s %s)\n",
					expense.ID, expense.Description, expense.Cost, expense.CurrencyCode)
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "group", 0, "group to record the expense in")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (defaults to your account currency)")
	cmd.Flags().BoolVar(&payment, "payment", false, "record as a settlement payment")

	return cmd
}

func newExpensesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EXPENSE_ID",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expenseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing expense id: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.Expenses().Delete(cmd.Context(), expenseID)
			if err != nil {
				return fmt.Errorf("deleting expense: %w", err)
			}

			fmt.Printf("Deleted expense %d\n", expenseID)

			return nil
		},
	}
}
