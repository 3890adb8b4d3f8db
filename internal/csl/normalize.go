package csl

import (
	"fmt"
	"strings"

	"github.com/hoppe93/PublicationManager/internal/article"
)

// NormalizationError indicates a raw record is too malformed to yield a
// minimally valid canonical article. The attempted create or update must be
// aborted; no partial record is persisted.
type NormalizationError struct {
	DOI string // Offending DOI, where known
	Msg string
}

func (e *NormalizationError) Error() string {
	if e.DOI != "" {
		return fmt.Sprintf("normalizing record for DOI %s: %s", e.DOI, e.Msg)
	}
	return fmt.Sprintf("normalizing record: %s", e.Msg)
}

// Normalize converts a raw CSL-JSON record into a canonical article.
//
// The publication date is taken from the first available of published-print,
// published-online and created; missing month and day default to 1. Status
// is Published when a print date exists and Accepted otherwise; the
// remaining statuses are only ever assigned by manual edit.
func Normalize(rec Record) (article.Article, error) {
	if rec.Title == "" {
		return article.Article{}, &NormalizationError{DOI: rec.DOI, Msg: "record has no title"}
	}

	date, printed, err := normalizeDate(rec)
	if err != nil {
		return article.Article{}, err
	}

	status := article.StatusAccepted
	if printed {
		status = article.StatusPublished
	}

	art := article.Article{
		DOI:     rec.DOI,
		URL:     rec.URL,
		Title:   rec.Title,
		Journal: rec.ContainerTitle,
		Volume:  rec.Volume,
		Issue:   rec.Issue,
		Pages:   normalizePages(rec),
		Date:    date,
		Status:  status,
		Authors: normalizeAuthors(rec.Authors),
	}

	if art.URL == "" && art.DOI != "" {
		art.URL = "https://doi.org/" + art.DOI
	}

	return art, nil
}

// normalizeDate applies the date-source precedence and reports whether the
// print source supplied the date.
func normalizeDate(rec Record) (article.Date, bool, error) {
	if p := rec.PublishedPrint.parts(); p != nil {
		return dateFromParts(p), true, nil
	}
	if p := rec.PublishedOnline.parts(); p != nil {
		return dateFromParts(p), false, nil
	}
	if p := rec.Created.parts(); p != nil {
		return dateFromParts(p), false, nil
	}
	return article.Date{}, false, &NormalizationError{
		DOI: rec.DOI,
		Msg: "record has no print, online or creation date",
	}
}

func dateFromParts(p []int) article.Date {
	d := article.Date{Year: p[0], Month: 1, Day: 1}
	if len(p) > 1 {
		d.Month = p[1]
	}
	if len(p) > 2 {
		d.Day = p[2]
	}
	return d
}

// normalizePages prefers an explicit page range over an article number.
func normalizePages(rec Record) string {
	if rec.Page != "" {
		return rec.Page
	}
	return rec.ArticleNumber
}

// normalizeAuthors converts CSL author entries into display names in
// document order. Persons become "X. Y. Family", teams keep their name
// verbatim, and identifier-only stubs are dropped.
func normalizeAuthors(authors []Author) []string {
	var names []string
	for _, a := range authors {
		switch {
		case a.Given != "" && a.Family != "":
			names = append(names, initialize(a.Given)+" "+a.Family)
		case a.Family != "":
			names = append(names, a.Family)
		case a.Name != "":
			names = append(names, a.Name)
		}
	}
	return names
}

// initialize reduces a given name to period-separated initials:
// "John Robert" becomes "J. R.".
func initialize(given string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(given) {
		r := []rune(tok)
		b.WriteRune(r[0])
		b.WriteString(". ")
	}
	return strings.TrimRight(b.String(), " ")
}
