package export

import (
	"fmt"
	"strings"

	"github.com/hoppe93/PublicationManager/internal/article"
	"github.com/hoppe93/PublicationManager/internal/format"
)

// Text renders every article through the named format script, one citation
// per line. Articles that fail to render are reported in place rather than
// silently dropped; the rendering errors are also returned. With failFast
// set, rendering stops at the first error.
func Text(eng *format.Engine, scriptName, script string, arts []article.Article, opts format.Options, failFast bool) (string, []error) {
	var b strings.Builder
	var errs []error

	for _, art := range arts {
		out, err := eng.Render(script, art, opts)
		if err != nil {
			err = fmt.Errorf("format %q: %w", scriptName, err)
			errs = append(errs, err)
			b.WriteString(fmt.Sprintf("!! %s\n", err))
			if failFast {
				break
			}
			continue
		}
		b.WriteString(out)
		b.WriteString("\n")
	}

	return b.String(), errs
}
