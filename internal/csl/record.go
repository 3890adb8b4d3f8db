// Package csl parses CSL-JSON bibliographic records and normalizes them
// into canonical articles.
package csl

// Record is the raw external record returned by the DOI registry with
// content negotiation for application/vnd.citationstyles.csl+json. It is
// ephemeral: only the normalized article is persisted.
type Record struct {
	DOI            string `json:"DOI"`
	URL            string `json:"URL"`
	Title          string `json:"title"`
	ContainerTitle string `json:"container-title"`
	Volume         string `json:"volume"`
	Issue          string `json:"issue"`
	Page           string `json:"page"`
	ArticleNumber  string `json:"article-number"`

	PublishedPrint  *DateParts `json:"published-print"`
	PublishedOnline *DateParts `json:"published-online"`
	Created         *DateParts `json:"created"`

	Authors []Author `json:"author"`
}

// DateParts is the CSL structured date value: [[year, month?, day?]].
type DateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// parts returns the first date-parts entry, or nil when the value carries
// no usable date.
func (d *DateParts) parts() []int {
	if d == nil || len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return nil
	}
	return d.DateParts[0]
}

// Author is a single CSL author entry. A person has Given and Family set,
// a team or organization has only Name, and an entry with none of these is
// an identifier-only stub.
type Author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"`
	ORCID  string `json:"ORCID"`
}
