package cli

import (
	"fmt"

	"github.com/odoliveira/aliasloader/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRewriteCommand creates the 'rewrite' subcommand.
func NewRewriteCommand(pipelineFactory PipelineFactory) *cobra.Command {
	var workingDir string

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Merge alias maps and rewrite the generated autoload files.",
		Long: `Collects the class alias maps declared by the root package and every
installed dependency, writes the merged map into the generated-artifacts
directory and splices the alias loader initializer into the autoload entry
point. Does nothing when no package declares aliases, case-sensitive loading
is in effect and the loader is not forced on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewriteCmd(workingDir, pipelineFactory)
		},
	}

	cmd.Flags().StringVarP(&workingDir, "working-dir", "d", ".", "Project directory containing the host manifest.")

	return cmd
}

func runRewriteCmd(workingDir string, pipelineFactory PipelineFactory) error {
	pipeline, err := pipelineFactory(workingDir)
	if err != nil {
		return fmt.Errorf("could not open project: %w", err)
	}

	rewritten, err := pipeline.Rewrite()
	if err != nil {
		return fmt.Errorf("could not rewrite autoload files: %w", err)
	}

	if !rewritten {
		fmt.Println(ui.InfoColor("No alias maps found and no loader forced on. Autoload files left untouched."))
		return nil
	}

	fmt.Println(ui.SuccessColor("Generated the class alias map and rewrote the autoload entry point."))
	return nil
}
