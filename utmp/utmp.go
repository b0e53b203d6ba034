// Package utmp reads the system accounting database (utmp, wtmp or an
// explicit file of the same layout) and reports login sessions: who is
// logged in, on which terminal, since when and whether the session is
// idle.
//
// Records are decoded into one platform independent Record shape. The
// raw on-disk layout differs per target: the typed utmpx layout on most
// systems and the legacy untyped layout on OpenBSD; the decoder variant
// is selected at build time and the rest of the package never branches
// on platform.
package utmp

const proc = "/proc"

var (
	devDir   = "/dev"
	utmpFile = "/var/run/utmp"
	wtmpFile = "/var/log/wtmp"
)
