package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFriendsCommand creates the friends command group.
func NewFriendsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Manage friends",
	}

	cmd.AddCommand(newFriendsListCommand())

	return cmd
}

func newFriendsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List friends with outstanding balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			friends, err := client.Friends().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing friends: %w", err)
			}

			if handled, err := renderStructured(friends); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Email", "Balance")

			for _, friend := range friends {
				balances := make([]string, 0, len(friend.Balance))
				for _, balance := range friend.Balance {
					balances = append(balances, balance.Amount+" "+balance.CurrencyCode)
				}

				_ = table.Append(
					strconv.FormatInt(friend.ID, 10),
					friend.FirstName+" "+friend.LastName,
					friend.Email,
					strings.Join(balances, ", "),
				)
			}

			_ = table.Render()

			return nil
		},
	}
}
