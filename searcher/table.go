package searcher

// TranspositionTable caches search values keyed by state fingerprint so
// positions reached through different move orders are scored once. It
// is strictly a cache: a missing or evicted entry just forces
// recomputation. Not safe for concurrent searches without external
// synchronization.
type TranspositionTable struct {
	entries    []tableEntry
	mask       uint64
	generation uint8
}

type tableEntry struct {
	key        uint64
	value      float64
	depth      int16
	generation uint8
	used       bool
}

const DefaultTableCapacity = 1 << 17

// NewTranspositionTable builds a table with capacity rounded down to a
// power of two, minimum 1024 entries.
func NewTranspositionTable(capacity int) *TranspositionTable {
	size := 1024
	for size<<1 <= capacity {
		size <<= 1
	}
	return &TranspositionTable{
		entries: make([]tableEntry, size),
		mask:    uint64(size - 1),
	}
}

func (t *TranspositionTable) Len() int {
	count := 0
	for i := range t.entries {
		if t.entries[i].used {
			count++
		}
	}
	return count
}

// NextGeneration ages the table; older entries become preferred
// eviction victims on the next search.
func (t *TranspositionTable) NextGeneration() {
	t.generation++
}

// Load returns the cached value for key if it was computed to at least
// the given depth.
func (t *TranspositionTable) Load(key uint64, depth int) (float64, bool) {
	entry := &t.entries[key&t.mask]
	if entry.used && entry.key == key && entry.depth >= int16(depth) {
		entry.generation = t.generation
		return entry.value, true
	}
	return 0, false
}

// Store caches value for key at the given depth. A slot already holding
// a same-generation entry of greater depth for a different key is kept
// instead.
func (t *TranspositionTable) Store(key uint64, depth int, value float64) {
	entry := &t.entries[key&t.mask]
	if entry.used && entry.key != key && entry.generation == t.generation && entry.depth > int16(depth) {
		return
	}
	*entry = tableEntry{
		key:        key,
		value:      value,
		depth:      int16(depth),
		generation: t.generation,
		used:       true,
	}
}
