package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/artem13815/resume-editor/pkg/resume"
)

func newShowCmd(c *cli) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a saved resume",
		Long:  `Print a resume by its ID as JSON (default) or YAML.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := c.resumes.Get(cmd.Context(), args[0])
			if errors.Is(err, resume.ErrNotFound) {
				return fmt.Errorf("resume %q not found", args[0])
			}
			if err != nil {
				return fmt.Errorf("load resume: %w", err)
			}
			return writeResume(cmd.OutOrStdout(), rec, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}

func writeResume(w io.Writer, r resume.Resume, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
