// Package terminal provides small helpers for terminal output control.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines clears previously printed text, e.g. a credentials
// prompt that should not stay on screen after it was answered. textLength is
// the total number of characters printed (prompt plus user input); line
// wrapping at the current terminal width is accounted for.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when width cannot be determined
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}

	// After Enter the cursor sits on a fresh line below the input.
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
