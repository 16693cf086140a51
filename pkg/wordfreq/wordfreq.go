package wordfreq

import (
	"errors"
	"fmt"
	"io"

	"github.com/kr/pretty"

	"github.com/scottcagno/htable/pkg/htable"
	"github.com/scottcagno/htable/pkg/util"
	"github.com/scottcagno/htable/pkg/words"
)

// Summary describes what happened while a table was being built
type Summary struct {
	Words    int // words read from the input
	Distinct int // distinct words in the table
	Dropped  int // words that did not fit into a full table
}

// PrintInfo writes a frequency and word on a single line
func PrintInfo(w io.Writer, freq int, word string) error {
	_, err := fmt.Fprintf(w, "%-4d %s\n", freq, word)
	return err
}

// Build creates a table as described by conf and inserts every word read
// from r. Words that arrive once the table is full are dropped and counted
// in the Summary.
func Build(conf *Config, r io.Reader) (*htable.Table, Summary, error) {
	var sum Summary
	conf, err := CheckConfig(conf)
	if err != nil {
		return nil, sum, err
	}
	l := conf.Logger
	view := *conf
	view.Logger = nil
	l.Debugf("config: %# v", pretty.Formatter(view))
	defer util.TimeThis(l, "build")()

	tbl, err := htable.New(conf.Capacity, conf.Mode)
	if err != nil {
		return nil, sum, err
	}
	sc := words.NewScanner(r)
	for sc.Scan() {
		sum.Words++
		word := sc.Word()
		if _, err := tbl.Insert(word); err != nil {
			if !errors.Is(err, htable.ErrTableFull) {
				return nil, sum, err
			}
			sum.Dropped++
			l.Tracef("table full, dropping %q", word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, sum, fmt.Errorf("wordfreq: reading input: %w", err)
	}
	sum.Distinct = tbl.Len()
	if sum.Dropped > 0 {
		l.Warnf("table full: dropped %d of %d words (capacity %d)", sum.Dropped, sum.Words, tbl.Cap())
	}
	l.Debugf("read %d words, %d distinct, load factor %.2f", sum.Words, sum.Distinct, tbl.LoadFactor())
	return tbl, sum, nil
}

// Run builds a table from the words read from in and writes the report
// selected by conf.Output. The entire table dump goes to errOut, every
// other report to out.
func Run(conf *Config, in io.Reader, out, errOut io.Writer) error {
	conf, err := CheckConfig(conf)
	if err != nil {
		return err
	}
	tbl, _, err := Build(conf, in)
	if err != nil {
		return err
	}
	defer tbl.Close()
	switch conf.Output {
	case OutputStats:
		err = tbl.WriteStats(out, conf.Snapshots)
	case OutputTable:
		if err = tbl.WriteTable(errOut); err == nil {
			err = tbl.Print(out, PrintInfo)
		}
	default:
		err = tbl.Print(out, PrintInfo)
	}
	if err != nil {
		return fmt.Errorf("wordfreq: writing output: %w", err)
	}
	return nil
}
