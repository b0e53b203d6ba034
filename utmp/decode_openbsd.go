//go:build openbsd

package utmp

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"
)

// Legacy utmp layout: line, name, host, time. No type tag, no pid.
const (
	recordSize = 304
	lineSize   = 8
	nameSize   = 32
	hostSize   = 256
)

func decodeRecord(r io.Reader) (Record, error) {
	readString := func(size int) string {
		tmp := make([]byte, size)
		io.ReadFull(r, tmp)
		tmp = bytes.Trim(tmp, "\x00")
		return string(tmp)
	}

	var (
		rec Record
		sec int64
	)

	rec.Device = readString(lineSize)
	rec.User = readString(nameSize)
	rec.Host = readString(hostSize)

	binary.Read(r, binary.LittleEndian, &sec)
	rec.Time = time.Unix(sec, 0)

	rec.Type = UserProcess

	return rec, nil
}
