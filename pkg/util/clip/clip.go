package clip

import (
	"encoding/base64"
	"errors"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

var ErrNoClipboard = errors.New("no clipboard available")

// Copy tries the system clipboard first. If unavailable, it falls back to
// OSC52 (terminal clipboard), which also works over SSH.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	if err := copyOSC52(os.Stdout, text); err == nil {
		return nil
	}
	return ErrNoClipboard
}

// copyOSC52 sends an ANSI OSC52 sequence to the terminal. Some terminals
// have length limits, so the payload is capped.
func copyOSC52(w io.Writer, s string) error {
	const maxLen = 10000
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	b64 := base64.StdEncoding.EncodeToString([]byte(s))

	// tmux swallows OSC sequences unless wrapped in a passthrough escape.
	if os.Getenv("TMUX") != "" {
		_, err := io.WriteString(w, "\033Ptmux;\033\033]52;c;"+b64+"\a\033\\")
		return err
	}
	_, err := io.WriteString(w, "\033]52;c;"+b64+"\a")
	return err
}
