package utmp

import (
	"bytes"
	"net/netip"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"

	"github.com/midbel/shlex"
)

// Record types as tagged in the typed accounting layout. The legacy
// layout carries no type tag; its decoder marks every entry UserProcess.
const (
	Empty = iota
	RunLevel
	BootTime
	NewTime
	OldTime
	InitProcess
	LoginProcess
	UserProcess
	DeadProcess
	Accounting
)

// Record is one accounting entry. Device is the terminal short name
// relative to /dev. Device and User keep the database bytes verbatim,
// even when those are not valid UTF-8; validation happens where the
// text is displayed.
type Record struct {
	Type   int
	Pid    int
	Device string
	Id     string
	User   string
	Host   string

	TermStatus int
	ExitStatus int

	Session int
	Time    time.Time
	Addr    netip.Addr
}

// Regular reports whether the record belongs to a user known to the
// password database.
func (r Record) Regular() bool {
	if r.User == "" {
		return false
	}
	_, err := user.Lookup(r.User)
	return err == nil
}

// Command returns the short name of the session's leader process, or
// the empty string when the process is gone.
func (r Record) Command() string {
	var (
		pid      = strconv.Itoa(r.Pid)
		comm     = filepath.Join(proc, pid, "comm")
		buf, err = os.ReadFile(comm)
	)
	if err != nil {
		return ""
	}
	buf = bytes.Trim(buf, "\x00")
	buf = bytes.TrimSpace(buf)
	return string(buf)
}

// Args returns the full command line of the session's leader process.
func (r Record) Args() ([]string, error) {
	var (
		pid      = strconv.Itoa(r.Pid)
		buf, err = os.ReadFile(filepath.Join(proc, pid, "cmdline"))
	)
	if err != nil {
		return nil, err
	}
	buf = bytes.Trim(buf, "\x00")
	buf = bytes.Map(func(c rune) rune {
		if c == 0 {
			return ' '
		}
		return c
	}, buf)
	return shlex.Split(bytes.NewReader(buf))
}
