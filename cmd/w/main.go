package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/midbel/slices"
	"github.com/midbel/whoson/sysinfo"
	"github.com/midbel/whoson/utmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var (
		nohead bool
		short  bool
	)
	cmd := &cobra.Command{
		Use:           "w",
		Short:         "Show who is logged on and what they are doing",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(nohead, short)
		},
	}
	cmd.Flags().BoolVarP(&nohead, "no-header", "n", false, "skip the header line")
	cmd.Flags().BoolVarP(&short, "short", "s", false, "skip login time and idle")

	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(nohead, short bool) error {
	set, err := utmp.System()
	if err != nil {
		return fmt.Errorf("failed to read sessions: %w", err)
	}
	list := utmp.Select(set, utmp.Flags{Users: true}, "")
	if !nohead {
		printHeader(len(list))
	}
	if short {
		fmt.Printf("%-12s %-10s %-20s %s", "USER", "TTY", "FROM", "WHAT")
	} else {
		fmt.Printf("%-12s %-10s %-20s %-18s %-8s %s", "USER", "TTY", "FROM", "LOGIN@", "IDLE", "WHAT")
	}
	fmt.Println()
	for _, r := range list {
		if !r.Regular() {
			continue
		}
		if short {
			fmt.Printf("%-12s %-10s %-20s %s", r.User, r.Device, r.Host, command(r))
		} else {
			st := utmp.Probe(r.Device)
			fmt.Printf("%-12s %-10s %-20s %-18s %-8s %s", r.User, r.Device, r.Host, r.Time.Format("2006-01-02 15:04"), st.Idle, command(r))
		}
		fmt.Println()
	}
	return nil
}

func printHeader(users int) {
	var (
		now    = time.Now()
		up, _  = sysinfo.Uptime()
		avg, _ = sysinfo.LoadAvg()
	)
	fmt.Printf(" %s up %s, %d users, load average: %.2f, %.2f, %.2f", now.Format("15:04:05"), up, users, slices.Fst(avg), slices.Snd(avg), slices.Lst(avg))
	fmt.Println()
}

func command(r *utmp.Record) string {
	args, err := r.Args()
	if err != nil || len(args) == 0 {
		return r.Command()
	}
	return strings.Join(args, " ")
}
