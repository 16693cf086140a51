package htable

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/scottcagno/htable/pkg/util"
)

// 25 words
var words = []string{
	"reproducibility",
	"eruct",
	"acids",
	"flyspecks",
	"driveshafts",
	"volcanically",
	"discouraging",
	"acapnia",
	"phenazines",
	"hoarser",
	"abusing",
	"samara",
	"thromboses",
	"impolite",
	"drivennesses",
	"tenancy",
	"counterreaction",
	"kilted",
	"linty",
	"kistful",
	"biomarkers",
	"infusiblenesses",
	"capsulate",
	"reflowering",
	"heterophyllies",
}

var modes = []Mode{LinearProbing, DoubleHashing}

func newTable(t testing.TB, capacity int, mode Mode) *Table {
	t.Helper()
	tbl, err := New(capacity, mode)
	qt.Assert(t, qt.IsNil(err))
	return tbl
}

func Test_wordToInt(t *testing.T) {
	tests := []struct {
		word string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 3105},
		// signed char widening: 0xff is -1
		{"\xff", 0xffffffff},
		{"\xffa", 66},
	}
	for _, test := range tests {
		qt.Check(t, qt.Equals(wordToInt(test.word), test.want), qt.Commentf("word %q", test.word))
	}
	// wraps rather than overflowing
	long := "counterreactioncounterreactioncounterreaction"
	qt.Assert(t, qt.Equals(wordToInt(long), wordToInt(long)))
}

func TestNew(t *testing.T) {
	tests := []struct {
		capacity int
		mode     Mode
		err      error
	}{
		{113, LinearProbing, nil},
		{113, DoubleHashing, nil},
		{1, LinearProbing, nil},
		{2, DoubleHashing, nil},
		{0, LinearProbing, ErrBadCapacity},
		{-4, DoubleHashing, ErrBadCapacity},
		{1, DoubleHashing, ErrDegenerateStep},
		{11, Mode(7), ErrBadMode},
	}
	for _, test := range tests {
		tbl, err := New(test.capacity, test.mode)
		if test.err != nil {
			qt.Check(t, qt.ErrorIs(err, test.err))
			qt.Check(t, qt.IsNil(tbl))
			continue
		}
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.Equals(tbl.Cap(), test.capacity))
		qt.Check(t, qt.Equals(tbl.Len(), 0))
		qt.Check(t, qt.Equals(tbl.Mode(), test.mode))
	}
}

func TestTable_Insert(t *testing.T) {
	for _, mode := range modes {
		tbl := newTable(t, 113, mode)
		for i, word := range words {
			freq, err := tbl.Insert(word)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(freq, 1))
			qt.Assert(t, qt.Equals(tbl.Len(), i+1))
		}
		// re-inserting only bumps frequencies
		for _, word := range words {
			freq, err := tbl.Insert(word)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(freq, 2))
		}
		qt.Assert(t, qt.Equals(tbl.Len(), len(words)))
		qt.Assert(t, qt.HasLen(tbl.Collisions(), len(words)))
		tbl.Close()
	}
}

func TestTable_Search(t *testing.T) {
	for _, mode := range modes {
		tbl := newTable(t, 113, mode)
		for i, word := range words {
			for n := 0; n <= i; n++ {
				_, err := tbl.Insert(word)
				qt.Assert(t, qt.IsNil(err))
			}
		}
		for i, word := range words {
			freq, ok := tbl.Search(word)
			qt.Assert(t, qt.IsTrue(ok), qt.Commentf("%s: %q", mode, word))
			qt.Assert(t, qt.Equals(freq, i+1))
			qt.Assert(t, qt.Equals(tbl.Frequency(word), i+1))
		}
		for _, word := range []string{"zebra", "Eruct", "acid", ""} {
			freq, ok := tbl.Search(word)
			qt.Check(t, qt.IsFalse(ok), qt.Commentf("%s: %q", mode, word))
			qt.Check(t, qt.Equals(freq, 0))
		}
	}
}

func TestTable_SearchRepeated(t *testing.T) {
	tbl := newTable(t, 13, DoubleHashing)
	for i := 0; i < 40; i++ {
		_, err := tbl.Insert("again")
		qt.Assert(t, qt.IsNil(err))
	}
	qt.Assert(t, qt.Equals(tbl.Frequency("again"), 40))
	qt.Assert(t, qt.Equals(tbl.Len(), 1))
}

func TestTable_SmallScenario(t *testing.T) {
	tbl := newTable(t, 7, LinearProbing)
	for _, word := range []string{"a", "b", "a", "c"} {
		_, err := tbl.Insert(word)
		qt.Assert(t, qt.IsNil(err))
	}
	qt.Assert(t, qt.Equals(tbl.Len(), 3))
	qt.Assert(t, qt.Equals(tbl.Frequency("a"), 2))
	qt.Assert(t, qt.Equals(tbl.Frequency("b"), 1))
	qt.Assert(t, qt.Equals(tbl.Frequency("c"), 1))
	qt.Assert(t, qt.Equals(tbl.Frequency("z"), 0))
}

func TestTable_Full(t *testing.T) {
	for _, mode := range modes {
		tbl := newTable(t, 5, mode)
		for _, word := range []string{"a", "b", "c", "d", "e"} {
			freq, err := tbl.Insert(word)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(freq, 1))
		}
		freq, err := tbl.Insert("f")
		qt.Assert(t, qt.ErrorIs(err, ErrTableFull))
		qt.Assert(t, qt.Equals(freq, 0))
		qt.Assert(t, qt.Equals(tbl.Len(), 5))
		qt.Assert(t, qt.HasLen(tbl.Collisions(), 5))
		// existing keys can still be counted
		freq, err = tbl.Insert("c")
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(freq, 2))
		_, ok := tbl.Search("f")
		qt.Assert(t, qt.IsFalse(ok))
	}
}

func TestTable_Collisions(t *testing.T) {
	tests := []struct {
		mode Mode
		want []int
	}{
		// "a", "h" and "o" all start at slot 6 of 7
		{LinearProbing, []int{0, 1, 2}},
		{DoubleHashing, []int{0, 1, 1}},
	}
	for _, test := range tests {
		tbl := newTable(t, 7, test.mode)
		for _, word := range []string{"a", "h", "a", "o"} {
			_, err := tbl.Insert(word)
			qt.Assert(t, qt.IsNil(err))
		}
		if diff := cmp.Diff(test.want, tbl.Collisions()); diff != "" {
			t.Errorf("%s: collision log mismatch (-want +got):\n%s", test.mode, diff)
		}
		qt.Check(t, qt.Equals(tbl.Frequency("h"), 1))
		qt.Check(t, qt.Equals(tbl.Frequency("o"), 1))
		qt.Check(t, qt.Equals(tbl.Frequency("a"), 2))
	}
}

func TestTable_Step(t *testing.T) {
	tbl := newTable(t, 113, DoubleHashing)
	for _, word := range words {
		step := tbl.Step(word)
		qt.Assert(t, qt.Equals(tbl.Step(word), step))
		if step < 1 || step > tbl.Cap()-1 {
			t.Fatalf("step for %q out of range: %d", word, step)
		}
	}
	// "a" hashes to 97, and 97 % 112 = 97
	qt.Assert(t, qt.Equals(tbl.Step("a"), 98))

	lin := newTable(t, 113, LinearProbing)
	qt.Assert(t, qt.Equals(lin.Step("a"), 1))
}

func TestTable_Range(t *testing.T) {
	tbl := newTable(t, 7, LinearProbing)
	for _, word := range []string{"a", "h", "a", "o"} {
		_, err := tbl.Insert(word)
		qt.Assert(t, qt.IsNil(err))
	}
	type pair struct {
		Freq int
		Key  string
	}
	var got []pair
	tbl.Range(func(freq int, key string) bool {
		got = append(got, pair{freq, key})
		return true
	})
	// slot order, not insertion order
	want := []pair{{1, "h"}, {1, "o"}, {2, "a"}}
	qt.Assert(t, qt.DeepEquals(got, want))

	var counted int
	tbl.Range(func(freq int, key string) bool {
		counted++
		return false
	})
	qt.Assert(t, qt.Equals(counted, 1))
}

func TestTable_LoadFactor(t *testing.T) {
	tbl := newTable(t, 32, LinearProbing)
	for _, word := range words {
		_, err := tbl.Insert(word)
		qt.Assert(t, qt.IsNil(err))
	}
	percent := fmt.Sprintf("%.2f", tbl.LoadFactor())
	qt.Assert(t, qt.Equals(percent, "0.78"))
	tbl.Close()
	qt.Assert(t, qt.Equals(tbl.Cap(), 0))
}

func TestTable_RandomWords(t *testing.T) {
	for _, mode := range modes {
		tbl := newTable(t, 1021, mode)
		counts := make(map[string]int)
		for _, word := range util.RandWords(3000, 1, 2) {
			counts[word]++
			_, err := tbl.Insert(word)
			qt.Assert(t, qt.IsNil(err))
		}
		qt.Assert(t, qt.Equals(tbl.Len(), len(counts)))
		for word, n := range counts {
			qt.Assert(t, qt.Equals(tbl.Frequency(word), n), qt.Commentf("%s: %q", mode, word))
		}
	}
}

var result interface{}

func BenchmarkTable_Insert(b *testing.B) {
	for _, mode := range modes {
		b.Run(mode.String(), func(b *testing.B) {
			keys := util.RandWords(512, 4, 12)
			b.ResetTimer()
			b.ReportAllocs()
			var freq int
			for n := 0; n < b.N; n++ {
				tbl, _ := New(1021, mode)
				for _, key := range keys {
					freq, _ = tbl.Insert(key)
				}
			}
			result = freq
		})
	}
}

func BenchmarkTable_Search(b *testing.B) {
	for _, mode := range modes {
		b.Run(mode.String(), func(b *testing.B) {
			keys := util.RandWords(512, 4, 12)
			tbl, _ := New(1021, mode)
			for _, key := range keys {
				tbl.Insert(key)
			}
			b.ResetTimer()
			b.ReportAllocs()
			var freq int
			for n := 0; n < b.N; n++ {
				freq, _ = tbl.Search(keys[n%len(keys)])
			}
			result = freq
		})
	}
}
