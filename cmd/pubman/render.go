package main

import (
	"errors"
	"strconv"

	"github.com/hoppe93/PublicationManager/internal/format"
	"github.com/spf13/cobra"
)

var (
	renderFormat     string
	renderMaxAuthors int
	renderAbbrev     bool
	renderNoPeriods  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Render the citation for a stored article",
	Long: `Render a citation string for a stored article.

Without --format the built-in default format is used:
"Authors, Journal Volume (Year)". Named formats are managed with the
formats subcommands.`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	addRenderFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

// addRenderFlags registers the rendering option flags, shared with export.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Named format script to render with")
	cmd.Flags().IntVar(&renderMaxAuthors, "max-authors", 0, "Truncate author lists longer than this with ' et al' (0 = unlimited)")
	cmd.Flags().BoolVar(&renderAbbrev, "abbreviate-journal", false, "Abbreviate the journal name when a table entry exists")
	cmd.Flags().BoolVar(&renderNoPeriods, "no-periods", false, "Strip the periods of author initials")
}

// renderOptions collects the option flags into engine options.
func renderOptions() format.Options {
	opts := format.DefaultOptions()
	opts.MaxAuthors = renderMaxAuthors
	opts.AbbreviateJournal = renderAbbrev
	opts.IncludePeriods = !renderNoPeriods
	return opts
}

func runRender(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitWithError(ExitError, "invalid article ID %q", args[0])
	}

	db := mustOpenDB()
	defer db.Close()

	art, err := db.GetArticle(id)
	if err != nil {
		exitWithError(ExitError, "loading article: %v", err)
	}
	if art == nil {
		exitWithError(ExitDataError, "no article with ID %d", id)
	}

	scriptName, script := resolveScript(db, renderFormat)
	eng := mustEngine(db)

	citation, err := eng.Render(script, *art, renderOptions())
	if err != nil {
		var terr *format.TemplateError
		if errors.As(err, &terr) {
			exitWithError(ExitTemplateError, "format %q: %v", scriptName, terr)
		}
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("%s\n", citation)
	} else {
		outputJSON(RenderResponse{ID: id, Format: scriptName, Citation: citation})
	}
}
