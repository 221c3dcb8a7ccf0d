package paint

import (
	"errors"
	"fmt"
)

// ErrExportForbidden is the condition behind every SecurityError: the
// surface holds pixels from a source it may not re-export.
var ErrExportForbidden = errors.New("export forbidden by content policy")

// SecurityError reports a refused export of a tainted surface.
type SecurityError struct {
	// Op is the operation that refused (e.g. "paint.Snapshot").
	Op string
	// Origin is where the untrusted content came from.
	Origin string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("%s: %v: content from %s", e.Op, ErrExportForbidden, e.Origin)
}

func (e *SecurityError) Unwrap() error {
	return ErrExportForbidden
}
