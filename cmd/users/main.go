package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/midbel/whoson/utmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var all bool
	cmd := &cobra.Command{
		Use:           "users [FILE]",
		Short:         "Print the user names of users currently logged in",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return run(file, all)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include system users")

	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(file string, all bool) error {
	set, err := load(file)
	if err != nil {
		return fmt.Errorf("failed to read sessions: %w", err)
	}
	list := utmp.Select(set, utmp.Flags{Users: true}, "")
	var names []string
	for _, r := range list {
		if !all && !r.Regular() {
			continue
		}
		names = append(names, r.User)
	}
	sort.Strings(names)
	if len(names) > 0 {
		fmt.Println(strings.Join(names, " "))
	}
	return nil
}

func load(file string) (utmp.Set, error) {
	if file == "" {
		return utmp.System()
	}
	set, err := utmp.FromFile(file)
	if err != nil {
		return utmp.System()
	}
	return set, nil
}
