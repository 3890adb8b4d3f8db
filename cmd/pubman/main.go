// Package main provides the pubman CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/hoppe93/PublicationManager/internal/config"
	"github.com/hoppe93/PublicationManager/internal/format"
	"github.com/hoppe93/PublicationManager/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	// A missing .env file is fine; environment overrides are optional.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubman",
	Short: "Publication list manager",
	Long: `pubman manages a personal list of scientific publications.

Core features:
  - Fetch article metadata by DOI (CSL-JSON) or arXiv ID
  - Extract the DOI directly from an article PDF
  - Render citations through scriptable reference formats
  - Export the full list as plain text or BibTeX

Articles are stored in a local SQLite database. All commands output JSON
by default for scripting; use --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustOpenDB opens the publication database, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDB() *storage.DB {
	path, err := config.DatabasePath()
	if err != nil {
		exitWithError(ExitConfigError, "resolving database path: %v", err)
	}

	db, err := storage.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustOwnerName reads the configured owner identity, exits on error.
// An unset name is allowed and returns the empty string.
func mustOwnerName(db *storage.DB) string {
	owner, err := db.OwnerName()
	if err != nil {
		exitWithError(ExitError, "reading owner name: %v", err)
	}
	return owner
}

// mustEngine builds a citation engine bound to the configured owner.
func mustEngine(db *storage.DB) *format.Engine {
	return format.NewEngine(nil, mustOwnerName(db))
}

// resolveScript returns the format script to render with: the named stored
// format when a name is given, the default script otherwise.
func resolveScript(db *storage.DB, name string) (scriptName, script string) {
	if name == "" {
		return "default", format.DefaultScript
	}

	f, err := db.GetFormat(name)
	if err != nil {
		exitWithError(ExitError, "loading format %q: %v", name, err)
	}
	if f == nil {
		exitWithError(ExitDataError, "no format named %q", name)
	}
	return f.Name, f.Code
}
