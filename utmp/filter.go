package utmp

import "sort"

// Flags is the display configuration resolved once from the command
// line. The seven type filters pick record categories; the rest only
// affect presentation.
type Flags struct {
	Boot      bool
	Dead      bool
	Heading   bool
	Login     bool
	OnlyStdin bool
	Process   bool
	Count     bool
	RunLevel  bool
	Short     bool
	Time      bool
	Message   bool
	Users     bool
	Idle      bool
}

// Default reports whether no type filter is set, in which case the
// selection falls back to user sessions alone.
func (f Flags) Default() bool {
	return !f.Boot && !f.Dead && !f.Login && !f.Process && !f.RunLevel && !f.Time && !f.Users
}

// Select returns the records to display, in display order. The working
// set is restricted to tty when non empty, partitioned by record type
// into mutually exclusive categories, reduced to the requested ones
// (user sessions alone when no type filter is set), concatenated in the
// fixed order users, boot, dead, login, run-level, process, time, then
// stably sorted ascending by login time.
//
// On the legacy untyped layout every record decodes as UserProcess, so
// type filters other than Users select nothing there.
func Select(set Set, flags Flags, tty string) []*Record {
	var users, boots, deads, logins, runs, inits, times []*Record
	for i := range set {
		r := &set[i]
		if tty != "" && r.Device != tty {
			continue
		}
		switch r.Type {
		case UserProcess:
			users = append(users, r)
		case BootTime:
			boots = append(boots, r)
		case DeadProcess:
			deads = append(deads, r)
		case LoginProcess:
			logins = append(logins, r)
		case RunLevel:
			runs = append(runs, r)
		case InitProcess:
			inits = append(inits, r)
		case NewTime:
			times = append(times, r)
		}
	}

	var out []*Record
	if flags.Default() {
		out = users
	} else {
		if flags.Users {
			out = append(out, users...)
		}
		if flags.Boot {
			out = append(out, boots...)
		}
		if flags.Dead {
			out = append(out, deads...)
		}
		if flags.Login {
			out = append(out, logins...)
		}
		if flags.RunLevel {
			out = append(out, runs...)
		}
		if flags.Process {
			out = append(out, inits...)
		}
		if flags.Time {
			out = append(out, times...)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out
}
