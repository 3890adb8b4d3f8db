// Package article defines the canonical publication record used throughout
// the publication tracker.
package article

import (
	"fmt"
	"strings"
)

// Article is the normalized, persisted representation of a publication.
type Article struct {
	// Identity
	ID  int64  `json:"id"`
	DOI string `json:"doi,omitempty"`
	URL string `json:"url,omitempty"`
	// EUROfusion pinboard identifier
	Pinboard string `json:"pinboard_id,omitempty"`

	// Metadata
	Title   string   `json:"title"`
	Authors []string `json:"authors"` // Display names in document order
	Journal string   `json:"journal,omitempty"`
	Volume  string   `json:"volume,omitempty"`
	Issue   string   `json:"issue,omitempty"`
	Pages   string   `json:"pages,omitempty"`

	// Publication date; year is always present
	Date Date `json:"date"`

	Status   Status `json:"status"`
	Keywords string `json:"keywords,omitempty"`
}

// Date is a calendar date with the year always present. Month and day are
// set to 1 when the metadata source omits them.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// FirstAuthor returns the display name of the first listed author, or the
// empty string if the article has no authors.
func (a Article) FirstAuthor() string {
	if len(a.Authors) == 0 {
		return ""
	}
	return a.Authors[0]
}

// IsFirstAuthor reports whether the given owner identity matches the first
// author of the article. Every name token of the first author, with initials
// stripped of their periods, must occur in the owner string.
func (a Article) IsFirstAuthor(owner string) bool {
	first := a.FirstAuthor()
	if first == "" || owner == "" {
		return false
	}

	for _, w := range strings.Fields(first) {
		if !strings.Contains(owner, strings.Trim(w, ".")) {
			return false
		}
	}
	return true
}

// DisplayName returns a representative name for the article,
// "Family (year): Title".
func (a Article) DisplayName() string {
	parts := strings.Fields(a.FirstAuthor())
	family := ""
	if len(parts) > 0 {
		family = parts[len(parts)-1]
	}
	return fmt.Sprintf("%s (%d): %s", family, a.Date.Year, a.Title)
}
