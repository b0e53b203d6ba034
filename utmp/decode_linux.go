//go:build !openbsd

package utmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"net/netip"
	"time"
)

// Typed utmpx layout: type and pid, line, id, user, host, exit status,
// session, timeval, address, padding.
const (
	recordSize = 384
	lineSize   = 32
	nameSize   = 32
	hostSize   = 256
	addrSize   = 16
)

func decodeRecord(r io.Reader) (Record, error) {
	readString := func(size int) string {
		tmp := make([]byte, size)
		io.ReadFull(r, tmp)
		tmp = bytes.Trim(tmp, "\x00")
		return string(tmp)
	}

	readAddr := func() netip.Addr {
		var tmp [addrSize]byte
		io.ReadFull(r, tmp[:])
		return netip.AddrFrom16(tmp)
	}

	readTime := func() time.Time {
		var (
			val  int32
			when time.Time
		)
		binary.Read(r, binary.LittleEndian, &val)
		when = time.Unix(int64(val), 0)
		binary.Read(r, binary.LittleEndian, &val)
		return when.Add(time.Microsecond * time.Duration(val))
	}

	var (
		rec   Record
		short int16
		long  int32
	)

	binary.Read(r, binary.LittleEndian, &long)
	if long < Empty || long > Accounting {
		return rec, fmt.Errorf("unknown record type %d", long)
	}
	rec.Type = int(long)
	binary.Read(r, binary.LittleEndian, &long)
	rec.Pid = int(long)

	rec.Device = readString(lineSize)
	rec.Id = readString(4)
	rec.User = readString(nameSize)
	rec.Host = readString(hostSize)

	binary.Read(r, binary.LittleEndian, &short)
	rec.TermStatus = int(short)
	binary.Read(r, binary.LittleEndian, &short)
	rec.ExitStatus = int(short)
	binary.Read(r, binary.LittleEndian, &long)
	rec.Session = int(long)

	rec.Time = readTime()
	rec.Addr = readAddr()

	return rec, nil
}
