package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/hoppe93/PublicationManager/internal/article"
	"github.com/hoppe93/PublicationManager/internal/format"
)

func TestText(t *testing.T) {
	eng := format.NewEngine(nil, "J. R. Smith")

	a := testArticle()
	b := testArticle()
	b.Authors = []string{"A. Doe"}
	b.Date.Year = 2022

	out, errs := Text(eng, "default", format.DefaultScript,
		[]article.Article{a, b}, format.DefaultOptions(), false)
	if len(errs) != 0 {
		t.Fatalf("Text() errors = %v", errs)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Text() produced %d lines, want 2:\n%s", len(lines), out)
	}
	if lines[0] != "J. R. Smith, A. Doe, Nuclear Fusion 61 (2021)" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "A. Doe, Nuclear Fusion 61 (2022)" {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestText_ErrorReportedPerArticle(t *testing.T) {
	eng := format.NewEngine(nil, "J. R. Smith")

	bad := testArticle()
	bad.DOI = "10.1/bad"
	good := testArticle()

	// authorz is never bound, so the first article fails
	out, errs := Text(eng, "broken", `return authorz`,
		[]article.Article{bad, good}, format.DefaultOptions(), false)

	if len(errs) != 2 {
		t.Fatalf("Text() returned %d errors, want 2", len(errs))
	}
	var terr *format.TemplateError
	if !errors.As(errs[0], &terr) || terr.Article != "10.1/bad" {
		t.Errorf("error = %v, want TemplateError for 10.1/bad", errs[0])
	}
	if !strings.Contains(errs[0].Error(), `format "broken"`) {
		t.Errorf("error should name the format: %v", errs[0])
	}

	// Both failures appear as visible lines in the output.
	if strings.Count(out, "!!") != 2 {
		t.Errorf("failed articles not reported in output:\n%s", out)
	}
}

func TestText_FailFast(t *testing.T) {
	eng := format.NewEngine(nil, "J. R. Smith")

	arts := []article.Article{testArticle(), testArticle()}
	out, errs := Text(eng, "broken", `return authorz`, arts, format.DefaultOptions(), true)

	if len(errs) != 1 {
		t.Fatalf("Text() with fail-fast returned %d errors, want 1", len(errs))
	}
	if strings.Count(out, "!!") != 1 {
		t.Errorf("fail-fast should stop after the first failure:\n%s", out)
	}
}
