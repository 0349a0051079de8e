package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/DasULTRAS/splitwise-sdk/internal/constants"
)

type cliConfig struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base-url,omitempty"`
}

// NewLoginCommand creates the login command. It verifies the API key with a
// /get_current_user call before persisting it.
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Splitwise API key",
		Long:  "Verify a Splitwise API key and store it in the CLI config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("API key: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			viper.Set("token", token)

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			user, err := client.Users().GetCurrent(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying API key: %w", err)
			}

			err = saveConfig(&cliConfig{
				Token:   token,
				BaseURL: viper.GetString("base-url"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s %s\n", user.FirstName, user.LastName)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "API key to store (prompted when omitted)")

	return cmd
}

func saveConfig(config *cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".splitwise")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
