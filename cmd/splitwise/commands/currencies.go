package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCurrenciesCommand creates the currencies command.
func NewCurrenciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			currencies, err := client.Currencies().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing currencies: %w", err)
			}

			if handled, err := renderStructured(currencies); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Code", "Unit")

			for _, currency := range currencies {
				_ = table.Append(currency.CurrencyCode, currency.Unit)
			}

			_ = table.Render()

			return nil
		},
	}
}
