package main

import (
	"github.com/hoppe93/PublicationManager/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the global configuration file",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the resolved configuration",
	Run:   runConfigGet,
}

var configSetDBCmd = &cobra.Command{
	Use:   "set-database <path>",
	Short: "Set the database location",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigSetDB,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetDBCmd)
	rootCmd.AddCommand(configCmd)
}

// ConfigResponse is the response for config get.
type ConfigResponse struct {
	ConfigPath   string `json:"config_path"`
	DatabasePath string `json:"database_path"`
}

func runConfigGet(cmd *cobra.Command, args []string) {
	dbPath, err := config.DatabasePath()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		outputHuman("Config file: %s\nDatabase:    %s\n", config.Path(), dbPath)
		return
	}
	outputJSON(ConfigResponse{ConfigPath: config.Path(), DatabasePath: dbPath})
}

func runConfigSetDB(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	cfg.DatabasePath = config.ExpandTilde(args[0])
	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		outputHuman("Database path set to %s\n", cfg.DatabasePath)
	} else {
		outputJSON(UpdateResponse{Status: "saved", Key: "database_path", Value: cfg.DatabasePath})
	}
}
