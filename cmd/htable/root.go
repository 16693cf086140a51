package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/scottcagno/htable/pkg/htable"
	"github.com/scottcagno/htable/pkg/logger"
	"github.com/scottcagno/htable/pkg/util"
	"github.com/scottcagno/htable/pkg/wordfreq"
)

// newRootCmd creates the htable command reading words from stdin
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "htable [flags] < input",
		Short: "htable counts word frequencies using an open addressing hash table.",
		Long: `htable reads words from standard input, counts how often each one
occurs using a fixed size open addressing hash table, and prints the
frequency of every word in table order.

Collisions are resolved with linear probing unless -d is given, in
which case double hashing is used. With -p, htable instead prints how
the table behaved while it was being built: the share of keys placed
without a collision, and the average and maximum number of collisions,
at evenly spaced points between empty and full.

Words that arrive once the table is full are dropped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTable(cmd)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive(string(flagEntire), string(flagStats))
	return cmd
}

// Main runs the htable tool and returns the code for passing to os.Exit.
func Main() int {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "htable: %v\n", err)
		return 1
	}
	return 0
}

func runHTable(cmd *cobra.Command) error {
	conf, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	conf.Logger = newLogger(conf, cmd.ErrOrStderr())
	return wordfreq.Run(conf, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// newLogger returns a logger writing to w at the level conf asks for.
// Verbose always means debug.
func newLogger(conf *wordfreq.Config, w io.Writer) *logger.Logger {
	l := logger.NewLogger(w)
	l.SetColor(isTerminal(w))
	if conf.LogLevel != logger.LevelDefault {
		l.SetLevel(conf.LogLevel)
	}
	if conf.Verbose {
		l.SetLevel(logger.LevelDebug)
	}
	return l
}

// configFromFlags starts from the defaults, or the config file when one
// is given, and applies every flag that was set explicitly.
func configFromFlags(cmd *cobra.Command) (*wordfreq.Config, error) {
	conf := wordfreq.DefaultConfig()
	if path := flagConfig.String(cmd); path != "" {
		var err error
		if conf, err = wordfreq.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if flagDouble.Bool(cmd) {
		conf.Mode = htable.DoubleHashing
	}
	if flagTableSize.Changed(cmd) {
		size := flagTableSize.Int(cmd)
		if size <= 0 {
			return nil, fmt.Errorf("table size must be positive, got %d", size)
		}
		conf.Capacity = util.NextPrime(size)
	}
	if flagSnapshots.Changed(cmd) {
		n := flagSnapshots.Int(cmd)
		if n <= 0 {
			return nil, fmt.Errorf("snapshots must be positive, got %d", n)
		}
		conf.Snapshots = n
	}
	switch {
	case flagEntire.Bool(cmd):
		conf.Output = wordfreq.OutputTable
	case flagStats.Bool(cmd):
		conf.Output = wordfreq.OutputStats
	}
	if flagVerbose.Bool(cmd) {
		conf.Verbose = true
	}
	return wordfreq.CheckConfig(conf)
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
