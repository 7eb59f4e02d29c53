package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	t.Run("unicode terminal", func(t *testing.T) {
		t.Parallel()
		symbols := SelectSymbols(TerminalCapabilities{IsTTY: true, SupportsUnicode: true})
		assert.Equal(t, "✓", symbols.Checkmark)
		assert.Equal(t, "✗", symbols.Failure)
		assert.Equal(t, 14, symbols.SpinnerSet)
	})

	t.Run("ascii fallback", func(t *testing.T) {
		t.Parallel()
		symbols := SelectSymbols(TerminalCapabilities{IsTTY: true})
		assert.Equal(t, "[OK]", symbols.Checkmark)
		assert.Equal(t, "[FAIL]", symbols.Failure)
		assert.Equal(t, 9, symbols.SpinnerSet)
	})
}

func TestSpinnerNoopOffTerminal(t *testing.T) {
	t.Parallel()

	// Test processes have no TTY on stderr, so the spinner must be inert
	// and every method safe to call.
	s := NewSpinner("collecting commits", true)
	s.Start()
	s.UpdateMessage("still collecting")
	s.Stop()

	disabled := NewSpinner("collecting commits", false)
	disabled.Start()
	disabled.Stop()
}
