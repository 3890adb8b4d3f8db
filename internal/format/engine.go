package format

import (
	"strings"

	"github.com/hoppe93/PublicationManager/internal/article"
)

// DefaultScript is the format script used when no named format is selected:
// "Authors, Journal Volume (Year)".
const DefaultScript = `return "{authors}, {journal} {volume} ({year})"`

// Options control how the bound context is built for a render call.
type Options struct {
	// MaxAuthors truncates the authors binding to the first N entries with
	// an " et al" suffix. Zero means unlimited.
	MaxAuthors int
	// AbbreviateJournal replaces the journal binding with its abbreviation
	// table entry when one exists.
	AbbreviateJournal bool
	// IncludePeriods keeps the periods of author initials. When false,
	// ". " collapses to a single space and remaining periods are removed
	// from the authors and owner-identity bindings.
	IncludePeriods bool
}

// DefaultOptions returns the options used when the caller specifies none:
// unlimited authors, full journal names, periods kept.
func DefaultOptions() Options {
	return Options{IncludePeriods: true}
}

// Engine renders citation strings from canonical articles. It holds only
// read-only inputs, so a single Engine is safe for concurrent Render calls
// across articles.
type Engine struct {
	abbrev Abbreviations
	owner  string
}

// NewEngine creates an engine with the given abbreviation table and owner
// identity (the user's own display name, bound as firstauthor). A nil table
// falls back to the built-in one.
func NewEngine(abbrev Abbreviations, owner string) *Engine {
	if abbrev == nil {
		abbrev = DefaultAbbreviations()
	}
	return &Engine{abbrev: abbrev, owner: owner}
}

// Render evaluates a format script against the article and returns the
// citation string. Any evaluation failure is reported as a *TemplateError
// carrying the article's identity.
func (e *Engine) Render(script string, art article.Article, opts Options) (string, error) {
	env := e.bind(art, opts)

	v, err := runScript(script, env)
	if err != nil {
		return "", &TemplateError{Article: articleIdentity(art), Msg: err.Error(), Err: err}
	}
	return v.text(), nil
}

// bind builds the rendering context. The context is constructed completely
// before evaluation begins and is discarded after the render call.
func (e *Engine) bind(art article.Article, opts Options) map[string]value {
	// nauthors is always the structured author-list length, before any
	// truncation.
	nauthors := len(art.Authors)

	authors := art.Authors
	truncated := false
	if opts.MaxAuthors > 0 && len(authors) > opts.MaxAuthors {
		authors = authors[:opts.MaxAuthors]
		truncated = true
	}
	authorStr := strings.Join(authors, ", ")
	if truncated {
		authorStr += " et al"
	}

	owner := e.owner
	if !opts.IncludePeriods {
		authorStr = stripPeriods(authorStr)
		owner = stripPeriods(owner)
	}

	journal := art.Journal
	if opts.AbbreviateJournal {
		journal = e.abbrev.Lookup(journal)
	}

	return map[string]value{
		"doi":         stringValue(art.DOI),
		"title":       stringValue(art.Title),
		"url":         stringValue(art.URL),
		"pinboard_id": stringValue(art.Pinboard),
		"journal":     stringValue(journal),
		"volume":      stringValue(art.Volume),
		"issue":       stringValue(art.Issue),
		"pages":       stringValue(art.Pages),
		"date":        dateValue(art.Date),
		"year":        intValue(art.Date.Year),
		"authors":     stringValue(authorStr),
		"nauthors":    intValue(nauthors),
		"firstauthor": stringValue(owner),
	}
}

// stripPeriods removes the periods of author initials: ". " collapses to a
// single space, any remaining period is dropped.
func stripPeriods(s string) string {
	s = strings.ReplaceAll(s, ". ", " ")
	return strings.ReplaceAll(s, ".", "")
}

// articleIdentity picks the most useful identity for error messages.
func articleIdentity(art article.Article) string {
	if art.DOI != "" {
		return art.DOI
	}
	return art.Title
}
