package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/midbel/whoson/utmp"
)

const timeFormat = "2006-01-02 15:04"

func heading(flags utmp.Flags) string {
	switch {
	case flags.Short:
		return fmt.Sprintf("%-16s %-10s %-18s", "NAME", "LINE", "TIME")
	case flags.Idle:
		return fmt.Sprintf("%-16s %-10s %-18s %-10s %-10s", "NAME", "LINE", "TIME", "IDLE", "COMMENT")
	case flags.Default():
		return fmt.Sprintf("%-16s %-10s %-18s %-10s", "NAME", "LINE", "TIME", "COMMENT")
	default:
		return fmt.Sprintf("%-16s %-10s %-10s %-18s  %-10s %-10s", "NAME", "LINE", "PID", "TIME", "IDLE", "COMMENT")
	}
}

func formatRecord(r *utmp.Record, flags utmp.Flags) (string, error) {
	if !utf8.ValidString(r.Device) {
		return "", fmt.Errorf("device name %q is not valid utf-8", r.Device)
	}
	if !utf8.ValidString(r.Host) {
		return "", fmt.Errorf("host %q is not valid utf-8", r.Host)
	}
	var (
		st   = utmp.Probe(r.Device)
		msg  = " "
		when = r.Time.Format(timeFormat)
		host = fmt.Sprintf("(%s)", r.Host)
	)
	if flags.Message {
		msg = string(st.Message)
	}
	switch {
	case flags.Short:
		return fmt.Sprintf("%-12s %-3s %-10s %-18s", r.User, msg, r.Device, when), nil
	case flags.Idle:
		return fmt.Sprintf("%-12s %-3s %-10s %-18s    %-10s %-10s", r.User, msg, r.Device, when, st.Idle, host), nil
	case flags.Default():
		return fmt.Sprintf("%-12s %-3s %-10s %-18s   %-10s", r.User, msg, r.Device, when, host), nil
	default:
		return fmt.Sprintf("%-12s %-3s %-10s %-10d %-18s    %-10s %-10s", r.User, msg, r.Device, r.Pid, when, st.Idle, host), nil
	}
}

func countUsers(users []*utmp.Record) string {
	var str strings.Builder
	for _, r := range users {
		str.WriteString(r.User)
		str.WriteString(" ")
	}
	str.WriteString("\n")
	fmt.Fprintf(&str, "# users=%d", len(users))
	return str.String()
}
