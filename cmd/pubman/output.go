package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hoppe93/PublicationManager/internal/article"
)

const (
	// ListTitleMaxLen truncates titles in list command output
	ListTitleMaxLen = 60
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that change state.
type StatusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
}

// UpdateResponse is the response for settings/config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// RenderResponse is the response for the render command.
type RenderResponse struct {
	ID       int64  `json:"id"`
	Format   string `json:"format"`
	Citation string `json:"citation"`
}

// printArticleHuman prints the full detail view of an article.
func printArticleHuman(art article.Article) {
	fmt.Printf("%d  %s\n", art.ID, art.Title)
	fmt.Printf("    Authors: %s\n", strings.Join(art.Authors, ", "))
	if art.Journal != "" {
		fmt.Printf("    Journal: %s", art.Journal)
		if art.Volume != "" {
			fmt.Printf(" %s", art.Volume)
		}
		if art.Issue != "" {
			fmt.Printf(" (%s)", art.Issue)
		}
		if art.Pages != "" {
			fmt.Printf(", %s", art.Pages)
		}
		fmt.Println()
	}
	fmt.Printf("    Date:    %s  [%s]\n", art.Date, art.Status)
	if art.DOI != "" {
		fmt.Printf("    DOI:     %s\n", art.DOI)
	}
	if art.URL != "" {
		fmt.Printf("    URL:     %s\n", art.URL)
	}
	if art.Pinboard != "" {
		fmt.Printf("    Pinboard: %s\n", art.Pinboard)
	}
	if art.Keywords != "" {
		fmt.Printf("    Keywords: %s\n", art.Keywords)
	}
}

// printArticleListHuman prints one line per article.
func printArticleListHuman(arts []article.Article) {
	for _, art := range arts {
		fmt.Printf("%4d  %d  [%-17s]  %s\n",
			art.ID, art.Date.Year, art.Status, truncateString(art.Title, ListTitleMaxLen))
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
