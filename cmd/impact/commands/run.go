package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/impact/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <since-ref>",
		Short: "Compute affected projects and tasks since a reference commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, _ := cmd.Flags().GetStringArray("task")
			jsonPath, _ := cmd.Flags().GetString("json")
			htmlPath, _ := cmd.Flags().GetString("html")
			gradleArgs, _ := cmd.Flags().GetStringArray("gradle-arg")
			return c.app.Run(cmd.Context(), app.RunOptions{
				SinceRef:   args[0],
				Tasks:      tasks,
				JSONPath:   jsonPath,
				HTMLPath:   htmlPath,
				GradleArgs: gradleArgs,
			})
		},
	}
	cmd.Flags().StringArrayP("task", "t", nil, "Task name to expand per affected project (repeatable, default from settings)")
	cmd.Flags().String("json", "", "Write the machine-readable report to this path")
	cmd.Flags().String("html", "", "Write the human-readable report to this path")
	cmd.Flags().StringArray("gradle-arg", nil, "Extra flag passed through to the graph export (repeatable)")
	return cmd
}
