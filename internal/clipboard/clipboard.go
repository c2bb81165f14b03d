// Package clipboard writes text to the system clipboard. Failures are the
// caller's problem to surface (or ignore); nothing here touches session
// state.
package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"
)

// fallbackCommands are tried in order when the native clipboard binding is
// unavailable, e.g. on a headless Linux box without X.
var fallbackCommands = [][]string{
	{"pbcopy"},
	{"xclip", "-selection", "clipboard"},
	{"wl-copy"},
}

func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}

	for _, c := range fallbackCommands {
		if _, err := exec.LookPath(c[0]); err != nil {
			continue
		}
		cmd := exec.Command(c[0], c[1:]...)
		cmd.Stdin = bytes.NewBufferString(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("clipboard: no clipboard mechanism available")
}
