package internal

import (
	"fmt"
	"runtime"

	"github.com/forgelab/forge/internal/env"
	"github.com/forgelab/forge/recipe"
	"github.com/forgelab/forge/target"
	"github.com/spf13/cobra"
)

var planArch string

var planCmd = &cobra.Command{
	Use:   "plan [recipe]",
	Short: "Print the build plan of a recipe",
	Long: `Plan runs a recipe's prepare, configure, and build hooks against a
recording runner and prints the source declaration and composed commands.
Nothing is fetched and nothing is executed; post-build artifact fixups are
skipped because they operate on real build output.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planArch, "arch", "a", defaultArch(), "Target architecture")
	rootCmd.AddCommand(planCmd)
}

func defaultArch() string {
	if runtime.GOARCH == "amd64" {
		return "x86_64"
	}
	return runtime.GOARCH
}

func runPlan(cmd *cobra.Command, args []string) error {
	t := target.Find(args[0])
	if t == nil {
		return fmt.Errorf("unknown recipe %q", args[0])
	}

	manifest, _ := target.FindManifest(t.Name())

	runner := &recipe.PlanRunner{}
	st := recipe.NewBuildState()
	st.SourceDir = env.SourceDir(t.Name())
	st.BuildDir = env.BuildDir(t.Name())
	st.InstallDir = env.InstallDir(t.Name(), manifest.Version)
	st.Architecture = planArch
	st.Runner = runner

	t.PrepareSource(st)
	if err := t.Configure(st); err != nil {
		return fmt.Errorf("failed to configure %s: %w", t.Name(), err)
	}
	if err := t.Build(st); err != nil {
		return fmt.Errorf("failed to build %s: %w", t.Name(), err)
	}

	for _, src := range runner.Sources {
		fmt.Printf("fetch %s\n", src.URL)
		fmt.Printf("  sha256 %s\n", src.SHA256)
		for _, patch := range src.Patches {
			fmt.Printf("  patch %s\n", patch)
		}
	}
	for _, c := range runner.Commands {
		if c.Dir != "" {
			fmt.Printf("cd %s && %s\n", c.Dir, c)
		} else {
			fmt.Println(c)
		}
	}
	return nil
}
