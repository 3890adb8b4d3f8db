package format

import "fmt"

// TemplateError wraps any evaluation-time failure of a format script: an
// unbound name, a type mismatch or a malformed script. It never corrupts
// the caller's aggregate output; the caller decides whether to abort or
// skip the offending article.
type TemplateError struct {
	Article string // Identity of the offending article (DOI or title), where available
	Msg     string
	Err     error
}

func (e *TemplateError) Error() string {
	if e.Article != "" {
		return fmt.Sprintf("rendering citation for %s: %s", e.Article, e.Msg)
	}
	return fmt.Sprintf("rendering citation: %s", e.Msg)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
