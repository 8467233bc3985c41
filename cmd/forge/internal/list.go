package internal

import (
	"fmt"
	"sort"

	"github.com/forgelab/forge/target"
	"github.com/spf13/cobra"
)

var listKind string
var listSort string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known recipes",
	Long:  `List prints every recipe with its upstream version, libraries first.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listKind, "kind", "k", "", "Only list recipes of this kind (library or tool)")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "name", "Sort order: name or version")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	manifests := target.Manifests()

	if listKind != "" {
		if listKind != target.KindLibrary && listKind != target.KindTool {
			return fmt.Errorf("unknown kind %q, want %q or %q", listKind, target.KindLibrary, target.KindTool)
		}
		filtered := manifests[:0]
		for _, m := range manifests {
			if m.Kind == listKind {
				filtered = append(filtered, m)
			}
		}
		manifests = filtered
	}

	switch listSort {
	case "name":
		sort.SliceStable(manifests, func(i, j int) bool {
			return manifests[i].Name < manifests[j].Name
		})
	case "version":
		sort.SliceStable(manifests, func(i, j int) bool {
			return target.CompareVersions(manifests[i].Version, manifests[j].Version) < 0
		})
	default:
		return fmt.Errorf("unknown sort order %q, want name or version", listSort)
	}

	for _, m := range manifests {
		fmt.Printf("%s\t%s\t%s\n", m.Name, m.Version, m.Kind)
	}
	return nil
}
