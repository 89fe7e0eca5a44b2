package index

import (
	"errors"
	"fmt"
)

// ErrFileProtocol is returned when the index is addressed through a file: URL.
// The index must be served over HTTP(S).
var ErrFileProtocol = errors.New("index must be served over HTTP, not file://")

// DataLoadError reports a failed index fetch: a transport error, a
// non-success status, or a body that is not a JSON article array.
type DataLoadError struct {
	URL    string
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("load %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("load %s: %v", e.URL, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
