package changelog

import (
	"fmt"
	"io"
)

// MergeSeparator divides a freshly rendered release from the previous
// changelog contents it is prepended to.
const MergeSeparator = "\n\n\n"

// WriteMerged writes the rendered release followed by the separator and
// the previous changelog contents. Prepending keeps the newest release
// at the top of the merged document; previous may be empty on the first
// run.
func WriteMerged(w io.Writer, rendered, previous string) error {
	if _, err := io.WriteString(w, rendered); err != nil {
		return fmt.Errorf("writing release: %w", err)
	}
	if _, err := io.WriteString(w, MergeSeparator); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	if _, err := io.WriteString(w, previous); err != nil {
		return fmt.Errorf("writing previous contents: %w", err)
	}
	return nil
}
