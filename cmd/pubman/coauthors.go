package main

import (
	"github.com/hoppe93/PublicationManager/internal/author"
	"github.com/spf13/cobra"
)

var coauthorsTop int

var coauthorsCmd = &cobra.Command{
	Use:   "coauthors",
	Short: "List your most frequent coauthors",
	Run:   runCoauthors,
}

func init() {
	coauthorsCmd.Flags().IntVar(&coauthorsTop, "top", 0, "Only the N most frequent coauthors (0 = all)")
	rootCmd.AddCommand(coauthorsCmd)
}

func runCoauthors(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	arts, err := db.ListArticles()
	if err != nil {
		exitWithError(ExitError, "listing articles: %v", err)
	}

	counts := author.TopCoauthors(arts, mustOwnerName(db))
	if coauthorsTop > 0 && len(counts) > coauthorsTop {
		counts = counts[:coauthorsTop]
	}

	if humanOutput {
		for _, c := range counts {
			outputHuman("%4d  %s\n", c.Publications, c.Name)
		}
		return
	}
	if counts == nil {
		counts = []author.CoauthorCount{}
	}
	outputJSON(counts)
}
