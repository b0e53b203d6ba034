package main

import (
	"fmt"

	"github.com/midbel/whoson/utmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var (
		log     = logrus.New()
		flags   utmp.Flags
		all     bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "who [FILE]",
		Short:         "Show who is currently logged in",
		Long:          "Show who is currently logged in, reading the live accounting database or FILE when given. An unreadable FILE falls back to the live database.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if all {
				flags.Users = true
				flags.Boot = true
				flags.Dead = true
				flags.Login = true
				flags.RunLevel = true
				flags.Process = true
				flags.Time = true
			}
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return run(log, flags, file)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "same as -b -d -l -p -r -t -u")
	cmd.Flags().BoolVarP(&flags.Boot, "boot", "b", false, "time of last system boot")
	cmd.Flags().BoolVarP(&flags.Dead, "dead", "d", false, "show dead processes")
	cmd.Flags().BoolVarP(&flags.Heading, "heading", "H", false, "print line of column headings")
	cmd.Flags().BoolVarP(&flags.Idle, "idle", "i", false, "add idle time for each user")
	cmd.Flags().BoolVarP(&flags.Login, "login", "l", false, "show system login processes")
	cmd.Flags().BoolVarP(&flags.OnlyStdin, "associated-stdin", "m", false, "only sessions on the same terminal as stdin")
	cmd.Flags().BoolVarP(&flags.Process, "process", "p", false, "show active processes spawned by init")
	cmd.Flags().BoolVarP(&flags.Count, "count", "q", false, "all login names and number of users logged on")
	cmd.Flags().BoolVarP(&flags.RunLevel, "runlevel", "r", false, "show current run level")
	cmd.Flags().BoolVarP(&flags.Short, "short", "s", false, "show only name, line and time")
	cmd.Flags().BoolVarP(&flags.Time, "time", "t", false, "show last system clock change")
	cmd.Flags().BoolVarP(&flags.Message, "message", "T", false, "add user's message status as +, - or ?")
	cmd.Flags().BoolVarP(&flags.Users, "users", "u", false, "list users logged in")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(log *logrus.Logger, flags utmp.Flags, file string) error {
	set, err := load(log, file)
	if err != nil {
		return fmt.Errorf("failed to read sessions: %w", err)
	}
	var tty string
	if flags.OnlyStdin {
		tty, err = utmp.StdinTTY()
		if err != nil {
			return fmt.Errorf("failed to get current tty: %w", err)
		}
	}
	if flags.Count {
		// Count mode always enumerates user sessions, whatever type
		// filters are also set; only the stdin restriction applies.
		users := utmp.Select(set, utmp.Flags{Users: true}, tty)
		fmt.Println(countUsers(users))
		return nil
	}
	list := utmp.Select(set, flags, tty)
	if flags.Heading {
		fmt.Println(heading(flags))
	}
	for _, r := range list {
		line, err := formatRecord(r, flags)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	return nil
}

func load(log *logrus.Logger, file string) (utmp.Set, error) {
	if file == "" {
		return utmp.System()
	}
	set, err := utmp.FromFile(file)
	if err != nil {
		log.WithField("file", file).WithError(err).Debug("falling back to live accounting database")
		return utmp.System()
	}
	return set, nil
}
