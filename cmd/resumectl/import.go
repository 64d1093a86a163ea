package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newImportCmd(c *cli) *cobra.Command {
	var (
		save   bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Draft a resume from a PDF or DOCX file",
		Long: `Extract text from a PDF or DOCX file and print the drafted resume.
With --save the draft is stored under a generated id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			draft, err := c.resumes.Import(cmd.Context(), filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			if save {
				id, err := c.resumes.Save(cmd.Context(), draft)
				if err != nil {
					return fmt.Errorf("save draft: %w", err)
				}
				draft.ID = id
				c.log.Info("draft saved", "id", id)
			}
			return writeResume(cmd.OutOrStdout(), draft, format)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Save the draft to the store")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}
