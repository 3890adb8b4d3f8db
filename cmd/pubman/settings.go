package main

import (
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage stored settings",
	Long: `Manage settings stored alongside the publication list.

The "name" setting holds your own display name in the same convention as
normalized author names ("X. Y. Family"). It is bound as firstauthor in
format scripts and used for first-author detection.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting value",
	Args:  cobra.ExactArgs(1),
	Run:   runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting value",
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	value, err := db.GetSetting(args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("%s\n", value)
	} else {
		outputJSON(UpdateResponse{Status: "ok", Key: args[0], Value: value})
	}
}

func runSettingsSet(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	if err := db.SetSetting(args[0], args[1]); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Set %s = %s\n", args[0], args[1])
	} else {
		outputJSON(UpdateResponse{Status: "saved", Key: args[0], Value: args[1]})
	}
}
