// Package sysinfo reads uptime and load figures from procfs.
package sysinfo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	uptimeFile  = filepath.Join("/proc", "uptime")
	loadavgFile = filepath.Join("/proc", "loadavg")
)

func Uptime() (time.Duration, error) {
	buf, err := os.ReadFile(uptimeFile)
	if err != nil {
		return 0, err
	}
	str, _, ok := bytes.Cut(buf, []byte{0x20})
	if !ok {
		return 0, nil
	}
	sec, err := strconv.ParseFloat(string(str), 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(sec) * time.Second, nil
}

func BootTime() (time.Time, error) {
	var (
		sec, err = Uptime()
		now      = time.Now()
	)
	if err != nil {
		return now, err
	}
	return now.Add(-sec), nil
}

// LoadAvg returns the 1, 5 and 15 minute load averages.
func LoadAvg() ([]float64, error) {
	buf, err := os.ReadFile(loadavgFile)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(buf))
	if len(fields) < 3 {
		return nil, fmt.Errorf("unexpected loadavg format")
	}
	var list []float64
	for _, str := range fields[:3] {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}
