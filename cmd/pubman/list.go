package main

import (
	"github.com/hoppe93/PublicationManager/internal/article"
	"github.com/spf13/cobra"
)

var (
	listStatus string
	listPrep   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored articles, newest first",
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only articles with this status (published, accepted, submitted, non-peer-reviewed)")
	listCmd.Flags().BoolVar(&listPrep, "in-preparation", false, "Only accepted and submitted articles")
	listCmd.MarkFlagsMutuallyExclusive("status", "in-preparation")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	var arts []article.Article
	var err error
	switch {
	case listPrep:
		arts, err = db.ListInPreparation()
	case listStatus != "":
		status, perr := article.ParseStatus(listStatus)
		if perr != nil {
			exitWithError(ExitError, "%v", perr)
		}
		arts, err = db.ListArticlesByStatus(status)
	default:
		arts, err = db.ListArticles()
	}
	if err != nil {
		exitWithError(ExitError, "listing articles: %v", err)
	}

	if humanOutput {
		printArticleListHuman(arts)
		return
	}
	if arts == nil {
		arts = []article.Article{}
	}
	outputJSON(arts)
}
