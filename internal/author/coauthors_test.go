package author

import (
	"reflect"
	"testing"

	"github.com/hoppe93/PublicationManager/internal/article"
)

func art(authors ...string) article.Article {
	return article.Article{Title: "t", Authors: authors}
}

func TestTopCoauthors(t *testing.T) {
	arts := []article.Article{
		art("J. R. Smith", "A. Doe", "B. Brown"),
		art("J. R. Smith", "A. Doe"),
		art("A. Doe", "C. Clark"),
	}

	got := TopCoauthors(arts, "J. R. Smith")
	want := []CoauthorCount{
		{Name: "A. Doe", Publications: 3},
		{Name: "B. Brown", Publications: 1},
		{Name: "C. Clark", Publications: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCoauthors() = %+v, want %+v", got, want)
	}
}

func TestTopCoauthors_OwnerExcluded(t *testing.T) {
	arts := []article.Article{art("J. R. Smith", "A. Doe")}

	for _, c := range TopCoauthors(arts, "J. R. Smith") {
		if c.Name == "J. R. Smith" {
			t.Error("owner should not appear in coauthor counts")
		}
	}
}

func TestTopCoauthors_Empty(t *testing.T) {
	if got := TopCoauthors(nil, "J. R. Smith"); len(got) != 0 {
		t.Errorf("TopCoauthors(nil) = %+v, want empty", got)
	}
}
