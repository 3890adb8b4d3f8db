package main

import (
	"strconv"

	"github.com/hoppe93/PublicationManager/internal/article"
	"github.com/spf13/cobra"
)

var getByDOI string

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a stored article",
	Args:  cobra.MaximumNArgs(1),
	Run:   runGet,
}

func init() {
	getCmd.Flags().StringVar(&getByDOI, "doi", "", "Look up by DOI instead of ID")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) {
	if len(args) == 0 && getByDOI == "" {
		exitWithError(ExitError, "an article ID or --doi is required")
	}

	db := mustOpenDB()
	defer db.Close()

	var art *article.Article
	var err error
	if getByDOI != "" {
		art, err = db.GetArticleByDOI(getByDOI)
	} else {
		var id int64
		id, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			exitWithError(ExitError, "invalid article ID %q", args[0])
		}
		art, err = db.GetArticle(id)
	}
	if err != nil {
		exitWithError(ExitError, "loading article: %v", err)
	}
	if art == nil {
		exitWithError(ExitDataError, "no such article")
	}

	if humanOutput {
		printArticleHuman(*art)
	} else {
		outputJSON(art)
	}
}
