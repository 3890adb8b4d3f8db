package main

import (
	"strconv"

	"github.com/hoppe93/PublicationManager/internal/article"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change the status of a stored article",
	Long: `Change the status of a stored article.

Valid statuses are published, accepted, submitted and non-peer-reviewed.
Fetched metadata only ever assigns published or accepted; submitted and
non-peer-reviewed are assigned here.`,
	Args: cobra.ExactArgs(2),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitWithError(ExitError, "invalid article ID %q", args[0])
	}

	status, err := article.ParseStatus(args[1])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	db := mustOpenDB()
	defer db.Close()

	if err := db.SetArticleStatus(id, status); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if humanOutput {
		outputHuman("Article %d is now %s\n", id, status)
	} else {
		outputJSON(StatusResponse{Status: status.String(), ID: id})
	}
}
