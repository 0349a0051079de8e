package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultJSONIndent = "  "

// renderStructured prints v as JSON or YAML when the configured output format
// asks for it. It reports whether it handled the output.
func renderStructured(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		if err := encoder.Encode(v); err != nil {
			return true, fmt.Errorf("encoding JSON output: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("encoding YAML output: %w", err)
		}

		_, _ = os.Stdout.Write(data)

		return true, nil
	default:
		return false, nil
	}
}
