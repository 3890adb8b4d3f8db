package doi

import (
	"errors"
	"fmt"
)

// FetchError indicates the metadata source returned a non-success status.
// It is surfaced verbatim to the caller and never retried automatically.
type FetchError struct {
	StatusCode int
	Reason     string
	DOI        string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching DOI %s: server returned '%d: %s'", e.DOI, e.StatusCode, e.Reason)
}

// IsNotFound reports whether the error indicates an unknown DOI.
func IsNotFound(err error) bool {
	var ferr *FetchError
	return errors.As(err, &ferr) && ferr.StatusCode == 404
}
