//go:build !openbsd

package utmp

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeRecord(rec Record) []byte {
	var buf bytes.Buffer
	writeString := func(str string, size int) {
		tmp := make([]byte, size)
		copy(tmp, str)
		buf.Write(tmp)
	}
	binary.Write(&buf, binary.LittleEndian, int32(rec.Type))
	binary.Write(&buf, binary.LittleEndian, int32(rec.Pid))
	writeString(rec.Device, lineSize)
	writeString(rec.Id, 4)
	writeString(rec.User, nameSize)
	writeString(rec.Host, hostSize)
	binary.Write(&buf, binary.LittleEndian, int16(rec.TermStatus))
	binary.Write(&buf, binary.LittleEndian, int16(rec.ExitStatus))
	binary.Write(&buf, binary.LittleEndian, int32(rec.Session))
	binary.Write(&buf, binary.LittleEndian, int32(rec.Time.Unix()))
	binary.Write(&buf, binary.LittleEndian, int32(0))
	buf.Write(make([]byte, recordSize-buf.Len()))
	return buf.Bytes()
}

func writeSet(t *testing.T, file string, set ...Record) {
	t.Helper()
	var buf bytes.Buffer
	for _, rec := range set {
		buf.Write(encodeRecord(rec))
	}
	require.NoError(t, os.WriteFile(file, buf.Bytes(), 0o644))
}

func TestFromFile(t *testing.T) {
	var (
		file  = filepath.Join(t.TempDir(), "utmp")
		alice = Record{Type: UserProcess, Pid: 1234, Device: "pts/0", Id: "ts/0", User: "alice", Host: "remote.example.com", Time: time.Unix(1_700_000_000, 0)}
		boot  = Record{Type: BootTime, Device: "~", User: "reboot", Time: time.Unix(1_699_990_000, 0)}
	)
	writeSet(t, file, alice, boot)

	set, err := FromFile(file)
	require.NoError(t, err)
	require.Len(t, set, 2)

	assert.Equal(t, UserProcess, set[0].Type)
	assert.Equal(t, 1234, set[0].Pid)
	assert.Equal(t, "pts/0", set[0].Device)
	assert.Equal(t, "alice", set[0].User)
	assert.Equal(t, "remote.example.com", set[0].Host)
	assert.Equal(t, time.Unix(1_700_000_000, 0), set[0].Time)

	assert.Equal(t, BootTime, set[1].Type)
	assert.Equal(t, "~", set[1].Device)
}

func TestFromFileEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "utmp")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	set, err := FromFile(file)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestFromFileTruncated(t *testing.T) {
	var (
		file = filepath.Join(t.TempDir(), "utmp")
		raw  = encodeRecord(Record{Type: UserProcess, User: "alice", Device: "tty1"})
	)
	raw = append(raw, raw[:recordSize/2]...)
	require.NoError(t, os.WriteFile(file, raw, 0o644))

	_, err := FromFile(file)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeUnknownType(t *testing.T) {
	raw := encodeRecord(Record{Type: 42, User: "alice", Device: "tty1"})
	_, err := decodeRecord(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestAll(t *testing.T) {
	var (
		file = filepath.Join(t.TempDir(), "wtmp")
		rec  = Record{Type: DeadProcess, Device: "tty2", Time: time.Unix(1_600_000_000, 0)}
	)
	writeSet(t, file, rec)

	old := wtmpFile
	wtmpFile = file
	defer func() {
		wtmpFile = old
	}()

	set, err := All()
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, DeadProcess, set[0].Type)
}

func TestSystemFallback(t *testing.T) {
	var (
		file = filepath.Join(t.TempDir(), "utmp")
		rec  = Record{Type: UserProcess, Pid: 99, Device: "tty7", User: "carol", Time: time.Unix(1_700_000_000, 0)}
	)
	writeSet(t, file, rec)

	old := utmpFile
	utmpFile = file
	defer func() {
		utmpFile = old
	}()

	// an unusable explicit file makes the caller fall back to the
	// live database, yielding the same set as reading it directly
	_, err := FromFile(filepath.Join(t.TempDir(), "nonexistent"))
	require.Error(t, err)

	want, err := System()
	require.NoError(t, err)
	require.Len(t, want, 1)
	assert.Equal(t, "carol", want[0].User)
}
