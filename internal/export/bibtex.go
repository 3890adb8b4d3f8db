// Package export serializes articles to citation output formats.
package export

import (
	"fmt"
	"strings"

	"github.com/hoppe93/PublicationManager/internal/article"
)

// ToBibTeX converts an article to a BibTeX entry. The reference name is the
// first author's family name followed by the publication year.
func ToBibTeX(art article.Article) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@article{%s,\n", citeKey(art)))
	b.WriteString(fmt.Sprintf("    title = {%s},\n", escapeLatex(art.Title)))

	if len(art.Authors) > 0 {
		b.WriteString(fmt.Sprintf("    author = {%s},\n", formatAuthors(art.Authors)))
	}
	if art.Journal != "" {
		b.WriteString(fmt.Sprintf("    journal = {%s},\n", escapeLatex(art.Journal)))
	}
	if art.Volume != "" {
		b.WriteString(fmt.Sprintf("    volume = {%s},\n", art.Volume))
	}
	if art.Pages != "" {
		b.WriteString(fmt.Sprintf("    pages = {%s},\n", art.Pages))
	}
	if art.Issue != "" {
		b.WriteString(fmt.Sprintf("    issue = {%s},\n", art.Issue))
	}

	b.WriteString(fmt.Sprintf("    year = {%d},\n", art.Date.Year))

	if art.DOI != "" {
		b.WriteString(fmt.Sprintf("    doi = {%s},\n", art.DOI))
	}
	if art.URL != "" {
		b.WriteString(fmt.Sprintf("    url = {%s},\n", art.URL))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts multiple articles to BibTeX format.
func ToBibTeXList(arts []article.Article) string {
	var entries []string
	for _, art := range arts {
		entries = append(entries, ToBibTeX(art))
	}
	return strings.Join(entries, "\n")
}

// citeKey builds the reference name, e.g. "Smith2021". Falls back to the
// year alone for articles without authors.
func citeKey(art article.Article) string {
	parts := strings.Fields(art.FirstAuthor())
	if len(parts) == 0 {
		return fmt.Sprintf("ref%d", art.Date.Year)
	}
	family := parts[len(parts)-1]
	return fmt.Sprintf("%s%d", family, art.Date.Year)
}

// formatAuthors joins display names with " and ". Names without initials
// (collaborations and teams) are brace-wrapped so BibTeX treats them as a
// single token.
func formatAuthors(authors []string) string {
	formatted := make([]string, len(authors))
	for i, a := range authors {
		if strings.Contains(a, ".") {
			formatted[i] = a
		} else {
			formatted[i] = "{" + a + "}"
		}
	}
	return strings.Join(formatted, " and ")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// & must come first so later escapes don't double up
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
