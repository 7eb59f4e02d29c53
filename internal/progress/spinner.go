package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// spinnerInterval is the frame rate of the activity spinner.
const spinnerInterval = 100 * time.Millisecond

// Spinner shows activity while a long operation runs. On non-interactive
// terminals it degrades to a silent no-op, so callers never need to guard
// their Start/Stop calls.
type Spinner struct {
	inner *spinner.Spinner
}

// NewSpinner creates a spinner with the given message, selecting the
// charset from the terminal's capabilities. Returns a no-op spinner when
// stderr is not a terminal or the caller disabled progress output.
func NewSpinner(message string, enabled bool) *Spinner {
	caps := DetectTerminalCapabilities()
	if !enabled || !caps.IsTTY {
		return &Spinner{}
	}

	symbols := SelectSymbols(caps)
	inner := spinner.New(
		spinner.CharSets[symbols.SpinnerSet],
		spinnerInterval,
		spinner.WithWriter(os.Stderr),
		spinner.WithHiddenCursor(true),
	)
	inner.Suffix = " " + message
	if caps.SupportsColor {
		inner.Color("cyan")
	}

	return &Spinner{inner: inner}
}

// Start begins the animation.
func (s *Spinner) Start() {
	if s.inner != nil {
		s.inner.Start()
	}
}

// UpdateMessage swaps the text shown next to the spinner.
func (s *Spinner) UpdateMessage(message string) {
	if s.inner != nil {
		s.inner.Suffix = " " + message
	}
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	if s.inner != nil {
		s.inner.Stop()
	}
}
