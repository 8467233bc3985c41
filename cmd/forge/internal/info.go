package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/forgelab/forge/target"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info [recipe]",
	Short: "Print the manifest of a recipe",
	Long:  `Info prints a recipe's declarative manifest: source URL, checksum, patches, and kind.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoFormat, "format", "f", "json", "Output format: json or yaml")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	manifest, ok := target.FindManifest(args[0])
	if !ok {
		return fmt.Errorf("unknown recipe %q", args[0])
	}

	switch infoFormat {
	case "json":
		data, err := json.MarshalIndent(manifest, "", "\t")
		if err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		if err := enc.Encode(manifest); err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q, want json or yaml", infoFormat)
	}
	return nil
}
