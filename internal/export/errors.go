package export

import "fmt"

// UnsupportedFormatError reports a format with no registered renderer.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %s", e.Format)
}
