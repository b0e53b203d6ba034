package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUptime(t *testing.T) {
	file := filepath.Join(t.TempDir(), "uptime")
	require.NoError(t, os.WriteFile(file, []byte("12345.67 54321.00\n"), 0o644))

	old := uptimeFile
	uptimeFile = file
	defer func() {
		uptimeFile = old
	}()

	up, err := Uptime()
	require.NoError(t, err)
	assert.Equal(t, 12345*time.Second, up)
}

func TestLoadAvg(t *testing.T) {
	file := filepath.Join(t.TempDir(), "loadavg")
	require.NoError(t, os.WriteFile(file, []byte("0.52 0.58 0.59 1/257 3142\n"), 0o644))

	old := loadavgFile
	loadavgFile = file
	defer func() {
		loadavgFile = old
	}()

	avg, err := LoadAvg()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.52, 0.58, 0.59}, avg)
}
