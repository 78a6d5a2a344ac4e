package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/pyproject"
	"github.com/wheelhouse-build/wheelhouse/pkg/ui"
	"gopkg.in/yaml.v3"
)

var metadataFormat string

var metadataCmd = &cobra.Command{
	Use:   "metadata [project-dir]",
	Short: "Show the metadata a build would embed",
	Long: `Metadata parses pyproject.toml and prints the METADATA file content a
wheel build would embed, without building anything. With --format yaml
the normalized record is printed instead of the encoded text.`,
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

		record, err := doc.Project.ToRecord(projectDir)
		if err != nil {
			return err
		}

		format, err := ui.ParseFormat(metadataFormat)
		if err != nil {
			return err
		}

		switch format {
		case ui.FormatYAML:
			out, err := yaml.Marshal(record)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		case ui.FormatText:
			fmt.Fprintln(cmd.OutOrStdout(), record.Encode())
			return nil
		default:
			return errors.Newf(errors.ErrInvalidInput, "unsupported format %q (supported: text, yaml)", metadataFormat)
		}
	},
}

func init() {
	metadataCmd.Flags().StringVarP(&metadataFormat, "format", "f", "text", "Output format (text, yaml)")
}
