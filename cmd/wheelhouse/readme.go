package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/pyproject"
	"github.com/wheelhouse-build/wheelhouse/pkg/ui"
)

var readmeCmd = &cobra.Command{
	Use:   "readme [project-dir]",
	Short: "Preview the project readme",
	Long: `Readme resolves the readme declared in pyproject.toml and renders it to
the terminal, so the project description can be checked before building.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir := "."
		if len(args) > 0 {
			projectDir = args[0]
		}

		doc, err := pyproject.Load(filepath.Join(projectDir, "pyproject.toml"))
		if err != nil {
			return err
		}

		path, err := doc.Project.ResolveReadme(projectDir)
		if err != nil {
			return err
		}
		if path == "" {
			return errors.New(errors.ErrNotFound, "project declares no readme file")
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "cannot read readme").
				WithDetail("path", path)
		}

		if ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
			fmt.Fprint(cmd.OutOrStdout(), string(content))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.NewReadmeRenderer().Render(string(content)))
		return nil
	},
}
