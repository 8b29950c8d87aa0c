package cli

import (
	"fmt"

	"github.com/odoliveira/aliasloader/internal/core/ports"
	"github.com/spf13/cobra"
)

// PipelineFactory builds the rewrite pipeline for the project at workingDir.
// Commands resolve the project lazily because the directory is a flag.
type PipelineFactory func(workingDir string) (ports.AutoloadRewriteService, error)

// MergeFactory builds the merge service and project repository for the
// project at workingDir.
type MergeFactory func(workingDir string) (ports.AliasMapMergeService, ports.ProjectRepository, error)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	pipelineFactory PipelineFactory,
	mergeFactory MergeFactory,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "aliasloader",
		Short: "aliasloader wires class alias maps into generated autoload files.",
		Long: `aliasloader merges the class alias maps declared by installed packages
and rewrites the host package manager's generated autoload files so aliased
and case-folded class names resolve at class-load time. Run it from a project
directory after the host has dumped its autoloader.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if pipelineFactory == nil && cmd.Name() == "rewrite" {
				return fmt.Errorf("rewrite pipeline not initialized for command %s", cmd.Name())
			}
			if mergeFactory == nil && cmd.Name() == "show" {
				return fmt.Errorf("merge service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewRewriteCommand(pipelineFactory))
	rootCmd.AddCommand(NewShowCommand(mergeFactory))

	return rootCmd
}
