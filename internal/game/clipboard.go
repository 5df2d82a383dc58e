package game

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// copyText places text on the system clipboard.
func copyText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: not supported on this system")
	}
	if text == "" {
		text = " "
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
