package internal

import (
	"fmt"
	"path/filepath"

	"github.com/forgelab/forge/recipe"
	"github.com/forgelab/forge/target"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Report which recipes match a source tree",
	Long:  `Detect checks an extracted source tree against every recipe's detection files.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve source dir: %w", err)
	}

	st := recipe.NewBuildState()
	st.SourceDir = dir

	matched := false
	for _, t := range target.Targets() {
		if t.Detect(st) {
			fmt.Println(t.Name())
			matched = true
		}
	}
	if !matched {
		return fmt.Errorf("no recipe matches %s", dir)
	}
	return nil
}
