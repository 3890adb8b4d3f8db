package main

import (
	"context"
	"errors"

	"github.com/hoppe93/PublicationManager/internal/article"
	"github.com/hoppe93/PublicationManager/internal/arxiv"
	"github.com/hoppe93/PublicationManager/internal/csl"
	"github.com/hoppe93/PublicationManager/internal/doi"
	"github.com/hoppe93/PublicationManager/internal/pdf"
	"github.com/hoppe93/PublicationManager/internal/storage"
	"github.com/spf13/cobra"
)

var (
	addArxiv    bool
	addPDF      bool
	addPinboard string
	addKeywords string
)

var addCmd = &cobra.Command{
	Use:   "add <doi|arxiv-id|pdf-path>",
	Short: "Fetch an article by identifier and store it",
	Long: `Fetch article metadata and add it to the publication list.

The identifier is a DOI (bare or as a doi.org URL) by default. With --arxiv
it is an arXiv ID or abstract URL; with --pdf it is the path to a PDF file
whose leading pages are scanned for a DOI.`,
	Args: cobra.ExactArgs(1),
	Run:  runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addArxiv, "arxiv", false, "Treat the identifier as an arXiv ID")
	addCmd.Flags().BoolVar(&addPDF, "pdf", false, "Extract the DOI from a PDF file")
	addCmd.Flags().StringVar(&addPinboard, "pinboard", "", "Pinboard bookmark ID to associate")
	addCmd.Flags().StringVar(&addKeywords, "keywords", "", "Comma-separated keywords")
	addCmd.MarkFlagsMutuallyExclusive("arxiv", "pdf")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	ctx := context.Background()

	var art article.Article
	if addArxiv {
		art = fetchArxiv(ctx, args[0])
	} else {
		identifier := args[0]
		if addPDF {
			found, err := pdf.ExtractDOI(identifier)
			if err != nil {
				exitWithError(ExitDataError, "reading PDF %s: %v", identifier, err)
			}
			if found == "" {
				exitWithError(ExitDataError, "no DOI found in %s", identifier)
			}
			identifier = found
		}
		art = fetchDOI(ctx, db, identifier)
	}

	art.Pinboard = addPinboard
	art.Keywords = addKeywords

	id, err := db.InsertArticle(art)
	if err != nil {
		exitWithError(ExitError, "storing article: %v", err)
	}
	art.ID = id

	if humanOutput {
		outputHuman("Added article %d: %s\n", id, art.DisplayName())
	} else {
		outputJSON(art)
	}
}

// fetchDOI retrieves and normalizes CSL-JSON metadata, exiting on failure.
// Duplicate DOIs are rejected before the network round trip.
func fetchDOI(ctx context.Context, db *storage.DB, identifier string) article.Article {
	normalized := doi.Normalize(identifier)
	if existing, err := db.GetArticleByDOI(normalized); err != nil {
		exitWithError(ExitError, "checking for duplicates: %v", err)
	} else if existing != nil {
		exitWithError(ExitDataError, "article with DOI %s already stored (ID %d)", normalized, existing.ID)
	}

	rec, err := doi.NewClient().Fetch(ctx, identifier)
	if err != nil {
		var ferr *doi.FetchError
		if errors.As(err, &ferr) {
			exitWithError(ExitFetchError, "%v", ferr)
		}
		exitWithError(ExitError, "%v", err)
	}

	art, err := csl.Normalize(rec)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return art
}

// fetchArxiv retrieves preprint metadata, exiting on failure.
func fetchArxiv(ctx context.Context, id string) article.Article {
	art, err := arxiv.NewClient().Fetch(ctx, id)
	if err != nil {
		var ferr *arxiv.FetchError
		if errors.As(err, &ferr) {
			exitWithError(ExitFetchError, "%v", ferr)
		}
		if errors.Is(err, arxiv.ErrNotFound) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}
	return art
}
