package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagConfig    flagName = "config"
	flagDouble    flagName = "double"
	flagEntire    flagName = "entire"
	flagSnapshots flagName = "snapshots"
	flagStats     flagName = "stats"
	flagTableSize flagName = "tablesize"
	flagVerbose   flagName = "verbose"
)

func addFlags(f *pflag.FlagSet) {
	f.StringP(string(flagConfig), "c", "",
		"read options from a YAML file; flags given on the command line override it")
	f.BoolP(string(flagDouble), "d", false,
		"resolve collisions with double hashing rather than linear probing")
	f.BoolP(string(flagEntire), "e", false,
		"print the entire table to stderr before the word frequencies")
	f.BoolP(string(flagStats), "p", false,
		"print statistics snapshots instead of the word frequencies")
	f.IntP(string(flagSnapshots), "s", 10,
		"number of statistics snapshots to print with -p")
	f.IntP(string(flagTableSize), "t", 113,
		"use the first prime greater than or equal to this as the table size")
	f.BoolP(string(flagVerbose), "v", false,
		"print debug information and timings to stderr")
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet.
func (f flagName) ensureAdded(cmd *cobra.Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Changed(cmd *cobra.Command) bool {
	f.ensureAdded(cmd)
	return cmd.Flags().Changed(string(f))
}

func (f flagName) Bool(cmd *cobra.Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) Int(cmd *cobra.Command) int {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt(string(f))
	return v
}

func (f flagName) String(cmd *cobra.Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}
