package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEnhanceCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "enhance [section] [content...]",
		Short: "Run the section enhancer on a piece of text",
		Example: `  resumectl enhance summary Five years in B2B sales
  resumectl enhance skills`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.enhance.Enhance(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
