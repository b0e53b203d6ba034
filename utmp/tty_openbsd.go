//go:build openbsd

package utmp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// StdinTTY returns the short name of the terminal device bound to
// standard input. Without procfs the device is found by walking /dev
// for the character device sharing stdin's rdev.
func StdinTTY() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("stdin is not a terminal")
	}
	var st unix.Stat_t
	if err := unix.Fstat(int(os.Stdin.Fd()), &st); err != nil {
		return "", fmt.Errorf("resolve stdin tty: %w", err)
	}
	files, err := os.ReadDir(devDir)
	if err != nil {
		return "", fmt.Errorf("resolve stdin tty: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		var ds unix.Stat_t
		if err := unix.Stat(filepath.Join(devDir, f.Name()), &ds); err != nil {
			continue
		}
		if ds.Mode&unix.S_IFMT == unix.S_IFCHR && ds.Rdev == st.Rdev {
			return f.Name(), nil
		}
	}
	return "", fmt.Errorf("no device in %s matches stdin", devDir)
}
