package main

import (
	"fmt"
	"os"

	"github.com/hoppe93/PublicationManager/internal/export"
	"github.com/spf13/cobra"
)

var exportFailFast bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the publication list",
}

var exportTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Export all articles as rendered citations, one per line",
	Long: `Render every stored article through a format script, one citation per
line. Articles that fail to render are reported in place; with --fail-fast
the export stops at the first failure.`,
	Run: runExportText,
}

var exportBibtexCmd = &cobra.Command{
	Use:   "bibtex",
	Short: "Export all articles as BibTeX entries",
	Run:   runExportBibtex,
}

func init() {
	addRenderFlags(exportTextCmd)
	exportTextCmd.Flags().BoolVar(&exportFailFast, "fail-fast", false, "Stop at the first article that fails to render")
	exportCmd.AddCommand(exportTextCmd)
	exportCmd.AddCommand(exportBibtexCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportText(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	arts, err := db.ListArticles()
	if err != nil {
		exitWithError(ExitError, "listing articles: %v", err)
	}

	scriptName, script := resolveScript(db, renderFormat)
	eng := mustEngine(db)

	out, errs := export.Text(eng, scriptName, script, arts, renderOptions(), exportFailFast)
	fmt.Print(out)

	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d articles failed to render\n", len(errs), len(arts))
		os.Exit(ExitTemplateError)
	}
}

func runExportBibtex(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	arts, err := db.ListArticles()
	if err != nil {
		exitWithError(ExitError, "listing articles: %v", err)
	}

	fmt.Print(export.ToBibTeXList(arts))
}
