package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewUserCommand creates the user command.
func NewUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			user, err := client.Users().GetCurrent(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching current user: %w", err)
			}

			if handled, err := renderStructured(user); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			_ = table.Append("ID", fmt.Sprintf("%d", user.ID))
			_ = table.Append("Name", user.FirstName+" "+user.LastName)
			_ = table.Append("Email", user.Email)
			_ = table.Append("Default currency", user.DefaultCurrency)
			_ = table.Append("Locale", user.Locale)

			_ = table.Render()

			return nil
		},
	}
}
