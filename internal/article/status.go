package article

import "fmt"

// Status describes where a publication is in its lifecycle. Exactly one
// status holds at any time.
type Status int

const (
	StatusPublished Status = iota + 1
	StatusAccepted
	StatusSubmitted
	StatusNonPeerReviewed
)

var statusNames = map[Status]string{
	StatusPublished:       "published",
	StatusAccepted:        "accepted",
	StatusSubmitted:       "submitted",
	StatusNonPeerReviewed: "non-peer-reviewed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus parses a status name as accepted on the command line.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q (valid: published, accepted, submitted, non-peer-reviewed)", name)
}
