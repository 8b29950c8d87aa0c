package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(mergeFactory MergeFactory) *cobra.Command {
	var workingDir string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the merged class alias map without rewriting anything.",
		Long:  `Merges the alias maps declared across the project and prints the resulting alias to canonical class table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(workingDir, mergeFactory)
		},
	}

	cmd.Flags().StringVarP(&workingDir, "working-dir", "d", ".", "Project directory containing the host manifest.")

	return cmd
}

func runShowCmd(workingDir string, mergeFactory MergeFactory) error {
	merger, repository, err := mergeFactory(workingDir)
	if err != nil {
		return fmt.Errorf("could not open project: %w", err)
	}

	rootPackage, err := repository.RootPackage()
	if err != nil {
		return fmt.Errorf("could not read root package: %w", err)
	}
	installed, err := repository.InstalledPackages()
	if err != nil {
		return fmt.Errorf("could not read installed packages: %w", err)
	}

	packages := append([]pkginfo.PackageDescriptor{rootPackage}, installed...)
	result, err := merger.Merge(packages, repository.BasePath())
	if err != nil {
		return fmt.Errorf("could not merge alias maps: %w", err)
	}

	if result.Map.IsEmpty() {
		fmt.Println(ui.InfoColor("No class aliases are declared in this project."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Merged class alias map:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Alias (folded)", "Canonical Class"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	aliases := make([]string, 0, len(result.Map.AliasToClass))
	for alias := range result.Map.AliasToClass {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		table.Append([]string{alias, result.Map.AliasToClass[alias]})
	}
	table.Render()

	fmt.Println(ui.DetailColor(fmt.Sprintf("(%d aliases across %d packages)", len(aliases), len(packages))))
	return nil
}
