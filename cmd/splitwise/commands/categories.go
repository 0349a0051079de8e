package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			categories, err := client.Categories().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing categories: %w", err)
			}

			if handled, err := renderStructured(categories); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Category", "Parent")

			for _, category := range categories {
				_ = table.Append(strconv.FormatInt(category.ID, 10), category.Name, "")

				for _, sub := range category.Subcategories {
					_ = table.Append(strconv.FormatInt(sub.ID, 10), sub.Name, category.Name)
				}
			}

			_ = table.Render()

			return nil
		},
	}
}
