package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage groups",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsGetCommand())
	cmd.AddCommand(newGroupsCreateCommand())
	cmd.AddCommand(newGroupsDeleteCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			groups, err := client.Groups().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing groups: %w", err)
			}

			if handled, err := renderStructured(groups); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Type", "Members", "Updated")

			for _, group := range groups {
				_ = table.Append(
					strconv.FormatInt(group.ID, 10),
					group.Name,
					group.GroupType,
					strconv.Itoa(len(group.Members)),
					group.UpdatedAt.Format("2006-01-02"),
				)
			}

			_ = table.Render()

			return nil
		},
	}
}

func newGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Show one group with balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing group id: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			group, err := client.Groups().Get(cmd.Context(), groupID)
			if err != nil {
				return fmt.Errorf("getting group: %w", err)
			}

			if handled, err := renderStructured(group); handled {
				return err
			}

			fmt.Printf("%s (%d)\n\n", group.Name, group.ID)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Member", "Currency", "Balance")

			for _, member := range group.Members {
				if len(member.Balance) == 0 {
					_ = table.Append(member.FirstName+" "+member.LastName, "", "0")

					continue
				}

				for _, balance := range member.Balance {
					_ = table.Append(member.FirstName+" "+member.LastName, balance.CurrencyCode, balance.Amount)
				}
			}

			_ = table.Render()

			return nil
		},
	}
}

func newGroupsCreateCommand() *cobra.Command {
	var groupType string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			group, err := client.Groups().Create(cmd.Context(), &splitwise.GroupCreateRequest{
				Name:      args[0],
				GroupType: groupType,
			})
			if err != nil {
				return fmt.Errorf("creating group: %w", err)
			}

			fmt.Printf("Created group %q (%d)\n", group.Name, group.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&groupType, "type", "", "group type (home, trip, couple, other)")

	return cmd
}

func newGroupsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing group id: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.Groups().Delete(cmd.Context(), groupID)
			if err != nil {
				return fmt.Errorf("deleting group: %w", err)
			}

			fmt.Printf("Deleted group %d\n", groupID)

			return nil
		},
	}
}
