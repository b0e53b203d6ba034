package utmp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTruncated is returned when a file ends in the middle of a record.
var ErrTruncated = errors.New("truncated record")

// Set is an ordered snapshot of accounting records, kept in the
// database's native write order. It is built once per invocation and
// never mutated afterwards; Select derives new sequences from it.
type Set []Record

// System reads the live accounting database of current sessions.
func System() (Set, error) {
	return FromFile(utmpFile)
}

// All reads the historical accounting database.
func All() (Set, error) {
	return FromFile(wtmpFile)
}

// FromFile reads and decodes every record of file.
func FromFile(file string) (Set, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readSet(r)
}

func readSet(r io.Reader) (Set, error) {
	var (
		buf = make([]byte, recordSize)
		set Set
	)
	for {
		n, err := io.ReadFull(r, buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w (%d < %d)", ErrTruncated, n, recordSize)
		}
		if err != nil {
			return nil, err
		}
		rec, err := decodeRecord(bytes.NewReader(buf))
		if err != nil {
			return nil, err
		}
		set = append(set, rec)
	}
	return set, nil
}
