package article

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		want    Status
		wantErr bool
	}{
		{"published", StatusPublished, false},
		{"accepted", StatusAccepted, false},
		{"submitted", StatusSubmitted, false},
		{"non-peer-reviewed", StatusNonPeerReviewed, false},
		{"Published", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusPublished, StatusAccepted, StatusSubmitted, StatusNonPeerReviewed} {
		got, err := ParseStatus(s.String())
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("round trip of %v = %v", s, got)
		}
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2020, Month: 3, Day: 1}
	if got := d.String(); got != "2020-03-01" {
		t.Errorf("Date.String() = %q, want %q", got, "2020-03-01")
	}
}

func TestDateBefore(t *testing.T) {
	tests := []struct {
		a, b Date
		want bool
	}{
		{Date{2019, 12, 31}, Date{2020, 1, 1}, true},
		{Date{2020, 1, 2}, Date{2020, 1, 1}, false},
		{Date{2020, 1, 1}, Date{2020, 1, 1}, false},
		{Date{2020, 2, 1}, Date{2020, 3, 1}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.want {
			t.Errorf("%v.Before(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsFirstAuthor(t *testing.T) {
	art := Article{Authors: []string{"J. R. Smith", "A. Doe"}}

	tests := []struct {
		owner string
		want  bool
	}{
		{"J. R. Smith", true},
		{"John Robert Smith", true}, // substring match per name token
		{"J R Smith", true},         // periods ignored during matching
		{"A. Doe", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.owner, func(t *testing.T) {
			if got := art.IsFirstAuthor(tt.owner); got != tt.want {
				t.Errorf("IsFirstAuthor(%q) = %v, want %v", tt.owner, got, tt.want)
			}
		})
	}

	empty := Article{}
	if empty.IsFirstAuthor("J. R. Smith") {
		t.Error("IsFirstAuthor on article without authors should be false")
	}
}

func TestDisplayName(t *testing.T) {
	art := Article{
		Title:   "A study of things",
		Authors: []string{"J. R. Smith"},
		Date:    Date{Year: 2020, Month: 1, Day: 1},
	}
	want := "Smith (2020): A study of things"
	if got := art.DisplayName(); got != want {
		t.Errorf("DisplayName() = %q, want %q", got, want)
	}
}

func TestFirstAuthorEmpty(t *testing.T) {
	if got := (Article{}).FirstAuthor(); got != "" {
		t.Errorf("FirstAuthor() on empty article = %q, want empty", got)
	}
}
