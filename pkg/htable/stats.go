package htable

import (
	"bufio"
	"fmt"
	"io"
)

// Snapshot describes the table as it was when it held a given percentage
// of its capacity in keys.
type Snapshot struct {
	PercentFull       int     // requested percentage of capacity
	CurrentEntries    int     // keys the table held at that point
	PercentAtHome     float64 // keys placed without a collision, as a percent
	AverageCollisions float64 // mean collisions per placed key
	MaxCollisions     int     // worst collision count of any placed key
}

// Snapshot computes the statistics for the first capacity*percentFull/100
// keys that were placed, in insertion order. It returns false if that
// number is zero or if the table never held that many keys.
func (t *Table) Snapshot(percentFull int) (Snapshot, bool) {
	entries := len(t.slots) * percentFull / 100
	if entries <= 0 || entries > t.keys {
		return Snapshot{}, false
	}
	s := Snapshot{
		PercentFull:    percentFull,
		CurrentEntries: entries,
	}
	var atHome, total int
	for _, coll := range t.log[:entries] {
		if coll == 0 {
			atHome++
		}
		if coll > s.MaxCollisions {
			s.MaxCollisions = coll
		}
		total += coll
	}
	s.PercentAtHome = float64(atHome) * 100.0 / float64(entries)
	s.AverageCollisions = float64(total) / float64(entries)
	return s, true
}

// Snapshots takes n evenly spaced snapshots, at 100*i/n percent full for
// i in 1..n, and returns the ones the table has data for.
func (t *Table) Snapshots(n int) []Snapshot {
	var snaps []Snapshot
	for i := 1; i <= n; i++ {
		if s, ok := t.Snapshot(100 * i / n); ok {
			snaps = append(snaps, s)
		}
	}
	return snaps
}

const statsRule = "------------------------------------------------------\n"

// WriteStats writes a report of n snapshots showing how the table evolved
// while it was being built.
func (t *Table) WriteStats(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n\n", t.mode)
	fmt.Fprint(bw, "Percent   Current    Percent    Average      Maximum\n")
	fmt.Fprint(bw, " Full     Entries    At Home   Collisions   Collisions\n")
	fmt.Fprint(bw, statsRule)
	for _, s := range t.Snapshots(n) {
		fmt.Fprintf(bw, "%4d %10d %11.1f %10.2f %11d\n",
			s.PercentFull, s.CurrentEntries, s.PercentAtHome, s.AverageCollisions, s.MaxCollisions)
	}
	fmt.Fprint(bw, statsRule+"\n")
	return bw.Flush()
}
