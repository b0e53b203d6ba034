//go:build !openbsd

package utmp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// StdinTTY returns the short name of the terminal device bound to
// standard input, with the /dev/ prefix stripped. It fails when stdin
// is not connected to a terminal.
func StdinTTY() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("stdin is not a terminal")
	}
	link, err := os.Readlink(filepath.Join(proc, "self", "fd", "0"))
	if err != nil {
		return "", fmt.Errorf("resolve stdin tty: %w", err)
	}
	return strings.TrimPrefix(link, devDir+"/"), nil
}
