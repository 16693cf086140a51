package htable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestTable_WriteTable(t *testing.T) {
	tbl := newTable(t, 7, LinearProbing)
	for _, word := range []string{"a", "h", "a", "o"} {
		_, err := tbl.Insert(word)
		qt.Assert(t, qt.IsNil(err))
	}
	var buf bytes.Buffer
	err := tbl.WriteTable(&buf)
	qt.Assert(t, qt.IsNil(err))
	want := "" +
		"  Pos  Freq  Stats  Word\n" +
		"----------------------------------------\n" +
		"    0     1     1   h\n" +
		"    1     1     2   o\n" +
		"    6     2     0   a\n"
	qt.Assert(t, qt.Equals(buf.String(), want))
}

func TestTable_Print(t *testing.T) {
	tbl := newTable(t, 7, LinearProbing)
	for _, word := range []string{"a", "b", "a", "c"} {
		_, err := tbl.Insert(word)
		qt.Assert(t, qt.IsNil(err))
	}
	var buf bytes.Buffer
	err := tbl.Print(&buf, func(w io.Writer, freq int, key string) error {
		_, err := fmt.Fprintf(w, "%-4d %s\n", freq, key)
		return err
	})
	qt.Assert(t, qt.IsNil(err))
	// b=0, c=1, a=6
	qt.Assert(t, qt.Equals(buf.String(), "1    b\n1    c\n2    a\n"))
}

func TestTable_PrintError(t *testing.T) {
	tbl := newTable(t, 7, LinearProbing)
	for _, word := range []string{"a", "b", "c"} {
		_, err := tbl.Insert(word)
		qt.Assert(t, qt.IsNil(err))
	}
	errStop := errors.New("stop")
	var calls int
	var buf bytes.Buffer
	err := tbl.Print(&buf, func(w io.Writer, freq int, key string) error {
		calls++
		if calls == 2 {
			return errStop
		}
		_, err := fmt.Fprintf(w, "%d %s\n", freq, key)
		return err
	})
	qt.Assert(t, qt.ErrorIs(err, errStop))
	qt.Assert(t, qt.Equals(calls, 2))
	// lines written before the error are not lost
	qt.Assert(t, qt.Equals(buf.String(), "1 b\n"))
}
