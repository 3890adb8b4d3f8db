package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a stored article",
	Args:    cobra.ExactArgs(1),
	Run:     runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitWithError(ExitError, "invalid article ID %q", args[0])
	}

	db := mustOpenDB()
	defer db.Close()

	if err := db.DeleteArticle(id); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if humanOutput {
		outputHuman("Removed article %d\n", id)
	} else {
		outputJSON(StatusResponse{Status: "removed", ID: id})
	}
}
