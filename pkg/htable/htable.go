package htable

// slot represents a single position in the Table
type slot struct {
	key  string
	freq int
	coll int // collisions seen while placing key
	used bool
}

// Table represents a fixed size open addressing hash table that counts
// how many times each key has been inserted. A Table is not safe for
// concurrent use; callers sharing one must serialize access themselves.
type Table struct {
	mode  Mode
	keys  int
	slots []slot
	log   []int // collisions per placed key, in insertion order
}

// New returns a new Table with exactly capacity slots using the provided
// addressing mode. The capacity never changes for the life of the table.
func New(capacity int, mode Mode) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	if !mode.valid() {
		return nil, ErrBadMode
	}
	if mode == DoubleHashing && capacity <= 1 {
		// the step is taken modulo capacity-1
		return nil, ErrDegenerateStep
	}
	t := &Table{
		mode:  mode,
		keys:  0,
		slots: make([]slot, capacity),
		log:   make([]int, 0, capacity),
	}
	return t, nil
}

// index returns the initial slot index for the provided hash value
func (t *Table) index(hash uint32) int {
	return int(uint64(hash) % uint64(len(t.slots)))
}

// step returns the double hashing step for the provided hash value. It is
// always within the range [1, capacity-1].
func (t *Table) step(hash uint32) int {
	return 1 + int(uint64(hash)%uint64(len(t.slots)-1))
}

// next returns the slot index that follows i in a probe sequence
func (t *Table) next(i, step int) int {
	if t.mode == DoubleHashing {
		return (i + step) % len(t.slots)
	}
	return (i + 1) % len(t.slots)
}

// probe walks the probe sequence for key and stops at the first slot that
// is either empty or holds key. It returns that slot's index along with the
// number of slots that were passed over on the way. If capacity slots were
// probed without stopping, the index returned is -1.
func (t *Table) probe(key string) (int, int) {
	hash := wordToInt(key)
	// initial index is the same for both modes
	i := t.index(hash)
	// the step is computed once from the same hash value
	var step int
	if t.mode == DoubleHashing {
		step = t.step(hash)
	}
	for coll := 0; coll < len(t.slots); coll++ {
		if !t.slots[i].used || t.slots[i].key == key {
			return i, coll
		}
		i = t.next(i, step)
	}
	return -1, len(t.slots)
}

// Insert adds one occurrence of key to the table and returns the key's new
// frequency. A frequency of one means the key was placed into an empty slot.
// If no slot can be found for a new key, ErrTableFull is returned and the
// table is left untouched.
func (t *Table) Insert(key string) (int, error) {
	i, coll := t.probe(key)
	if i < 0 {
		return 0, ErrTableFull
	}
	s := &t.slots[i]
	// found existing entry, bump its frequency
	if s.used {
		s.freq++
		return s.freq, nil
	}
	// we found a spot, insert a new entry
	*s = slot{
		key:  key,
		freq: 1,
		coll: coll,
		used: true,
	}
	t.log = append(t.log, coll)
	t.keys++
	return 1, nil
}

// Search returns the frequency of key, or false if key is not in the table.
// Search follows the same probe sequence as Insert.
func (t *Table) Search(key string) (int, bool) {
	i, _ := t.probe(key)
	if i < 0 || !t.slots[i].used {
		return 0, false
	}
	return t.slots[i].freq, true
}

// Frequency returns the frequency of key, or zero if it is not present
func (t *Table) Frequency(key string) int {
	freq, _ := t.Search(key)
	return freq
}

// Step returns the double hashing step that would be used for key. It
// returns 1 for a linear probing table.
func (t *Table) Step(key string) int {
	if t.mode != DoubleHashing {
		return 1
	}
	return t.step(wordToInt(key))
}

// Visitor is called by Range for every occupied slot
type Visitor func(freq int, key string) bool

// Range calls fn for every key in the table, in slot order, for as long
// as fn continues to return true. Range is not safe to perform an insert
// operation while ranging!
func (t *Table) Range(fn Visitor) {
	for i := 0; i < len(t.slots); i++ {
		if !t.slots[i].used {
			continue
		}
		if !fn(t.slots[i].freq, t.slots[i].key) {
			return
		}
	}
}

// Collisions returns a copy of the collision log. The i-th entry holds the
// number of collisions seen while placing the i-th distinct key.
func (t *Table) Collisions() []int {
	out := make([]int, len(t.log))
	copy(out, t.log)
	return out
}

// Len returns the number of distinct keys currently in the table
func (t *Table) Len() int {
	return t.keys
}

// Cap returns the fixed number of slots in the table
func (t *Table) Cap() int {
	return len(t.slots)
}

// Mode returns the addressing mode the table was created with
func (t *Table) Mode() Mode {
	return t.mode
}

// LoadFactor returns the fraction of slots currently in use
func (t *Table) LoadFactor() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	return float64(t.keys) / float64(len(t.slots))
}

// Close frees the slots held by the table. Calling any method on the
// Table after this will most likely result in a panic
func (t *Table) Close() {
	t.slots = nil
	t.log = nil
	t.keys = 0
}
