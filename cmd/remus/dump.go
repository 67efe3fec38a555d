// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// dumpFormat selects the dump output format.
var dumpFormat string

// dumpCmd exports the parsed, validated catalog in a machine-readable
// format so external tooling can consume the resolved model (including
// private recipes) without reimplementing the CUE loading path.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export the resolved recipe catalog for tooling",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, file, err := loadCatalog()
		if err != nil {
			return invocationError(err)
		}

		var out []byte
		switch dumpFormat {
		case "toml":
			out, err = toml.Marshal(file)
		case "json":
			out, err = json.MarshalIndent(file, "", "  ")
		default:
			return invocationError(fmt.Errorf("invalid dump format %q (valid: toml, json)", dumpFormat))
		}
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "toml", "output format (toml|json)")
}
