package htable

import (
	"bufio"
	"fmt"
	"io"
)

// PrintFunc formats a single key and its frequency
type PrintFunc func(w io.Writer, freq int, key string) error

// Print calls fn for every key in the table, in slot order, stopping at
// the first error. Whatever was written before the error is flushed to w.
func (t *Table) Print(w io.Writer, fn PrintFunc) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Range(func(freq int, key string) bool {
		err = fn(bw, freq, key)
		return err == nil
	})
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// WriteTable writes every occupied slot with its position, frequency,
// the collisions seen while placing it, and its key.
func (t *Table) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%5s %5s  %s  %s\n", "Pos", "Freq", "Stats", "Word")
	fmt.Fprint(bw, "----------------------------------------\n")
	for i := range t.slots {
		s := &t.slots[i]
		if !s.used {
			continue
		}
		fmt.Fprintf(bw, "%5d %5d %5d   %s\n", i, s.freq, s.coll, s.key)
	}
	return bw.Flush()
}
