package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-editor/pkg/config"
	"github.com/artem13815/resume-editor/pkg/enhance"
	"github.com/artem13815/resume-editor/pkg/logging"
	"github.com/artem13815/resume-editor/pkg/repository/filestore"
	"github.com/artem13815/resume-editor/pkg/resume"
	"github.com/artem13815/resume-editor/pkg/storage/jsondir"
)

// cli holds state shared by subcommands once flags are parsed.
type cli struct {
	dir     string
	verbose bool

	log     *slog.Logger
	resumes resume.UseCase
	enhance enhance.UseCase
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "resumectl",
		Short: "Inspect and edit the resume store from the terminal",
		Long: `resumectl works directly on the directory used by the resume editor
server (STORAGE_DIR). It lists and prints saved resumes, runs the section
enhancer and drafts resumes from PDF or DOCX files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if c.verbose {
				level = "debug"
			}
			c.log = logging.New(level, "text", os.Stderr)
			slog.SetDefault(c.log)

			repo := filestore.NewResumeRepository(jsondir.Open(c.dir), filestore.WithLogger(c.log))
			c.resumes = resume.NewService(repo)
			c.enhance = enhance.NewService()
		},
	}

	root.PersistentFlags().StringVarP(&c.dir, "dir", "d", config.Load().StorageDir, "Resume storage directory")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newListCmd(c),
		newShowCmd(c),
		newEnhanceCmd(c),
		newImportCmd(c),
	)
	return root
}
