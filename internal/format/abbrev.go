// Package format renders citation strings from canonical articles using
// user-authored format scripts, evaluated by a small sandboxed interpreter.
package format

// Abbreviations maps full journal names to their abbreviated forms. Lookups
// are exact and case-sensitive; the table is consulted, never mutated.
type Abbreviations map[string]string

// Lookup returns the abbreviation for the given journal name, or the name
// unchanged when no mapping exists.
func (a Abbreviations) Lookup(journal string) string {
	if abbr, ok := a[journal]; ok {
		return abbr
	}
	return journal
}

var defaultAbbreviations = Abbreviations{
	"Computer Physics Communications":       "Comput. Phys. Commun.",
	"Nuclear Fusion":                        "Nucl. Fusion",
	"Journal of Plasma Physics":             "J. Plasma Phys.",
	"Physics of Plasmas":                    "Phys. Plasmas",
	"Physical Review Letters":               "Phys. Rev. Lett.",
	"Plasma Physics and Controlled Fusion":  "Plasma Phys. Contr. F",
}

// DefaultAbbreviations returns a copy of the built-in physics journal
// abbreviation table.
func DefaultAbbreviations() Abbreviations {
	a := make(Abbreviations, len(defaultAbbreviations))
	for k, v := range defaultAbbreviations {
		a[k] = v
	}
	return a
}
