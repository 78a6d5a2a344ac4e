package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wheelhouse-build/wheelhouse/pkg/hooks"
	"github.com/wheelhouse-build/wheelhouse/pkg/logging"
	"github.com/wheelhouse-build/wheelhouse/pkg/ui"
)

var (
	buildWheelDir   string
	buildStagingDir string
)

var buildCmd = &cobra.Command{
	Use:   "build [project-dir]",
	Short: "Build a wheel archive from a project",
	Long: `Build reads pyproject.toml in the project directory, stages every .py
source file, and writes a wheel archive named after the project's
distribution name and version.

The destination file is never overwritten: building twice against the
same output directory fails unless the existing wheel is removed first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.build")

		projectDir := "."
		if len(args) > 0 {
			projectDir = args[0]
		}

		logger.Info().
			Str("projectDir", projectDir).
			Str("wheelDir", buildWheelDir).
			Msg("Starting wheel build")

		path, err := hooks.BuildWheel(hooks.BuildWheelOptions{
			ProjectDir: projectDir,
			WheelDir:   buildWheelDir,
			StagingDir: buildStagingDir,
		})
		if err != nil {
			return err
		}

		format := ui.DetectFormat(os.Stdout)
		fmt.Fprintln(cmd.OutOrStdout(),
			ui.Styled(format, ui.SuccessStyle, "Built"),
			ui.Styled(format, ui.PathStyle, path))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildWheelDir, "wheel-dir", "w", ".", "Directory where the wheel file is written")
	buildCmd.Flags().StringVar(&buildStagingDir, "staging-dir", "", "Keep staged files in this directory instead of a scratch temp dir")
}
