package utmp

import (
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// Status describes a terminal device at render time: whether its group
// may write to it and how long since it was last read.
type Status struct {
	Message byte   // '+', '-' or '?'
	Idle    string // ".", "old", "?" or zero padded HH:MM
}

// Probe inspects /dev/<device>. Unreadable metadata is absorbed into
// the unknown markers, never reported as an error.
func Probe(device string) Status {
	return probe(device, time.Now())
}

func probe(device string, now time.Time) Status {
	var st unix.Stat_t
	if err := unix.Stat(filepath.Join(devDir, device), &st); err != nil {
		return Status{Message: '?', Idle: "?"}
	}
	msg := byte('-')
	if st.Mode&unix.S_IWGRP != 0 {
		msg = '+'
	}
	return Status{Message: msg, Idle: idle(st.Atim.Sec, now.Unix())}
}

// idle labels the time since last access: "." under a minute, HH:MM up
// to a day, "old" beyond that or under clock skew, "?" when unknown.
func idle(last, now int64) string {
	if last == 0 {
		return "?"
	}
	if last < 0 || last <= now-24*3600 || last > now {
		return "old"
	}
	sec := now - last
	if sec < 60 {
		return "."
	}
	return fmt.Sprintf("%02d:%02d", sec/3600, (sec%3600)/60)
}
