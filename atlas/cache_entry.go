package atlas

import "sync/atomic"

// A cached table with additional information to estimate how
// much the entry is being used.
type cachedTableEntry struct {
	Table *Table // Read-only.
	CreationTick uint32 // Read-only.
	accessCount uint32
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedTableEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "glyphs accessed per tick". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedTableEntry) Hotness(tick uint32) uint32 {
	const ConstEvictionCost = 64 // additional threshold and pad
	glyphsHit := uint32(self.Table.Len() + 1)*atomic.LoadUint32(&self.accessCount)
	elapsed := tick - self.CreationTick
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + glyphsHit)/elapsed
}

func newCachedTableEntry(table *Table, tick uint32) *cachedTableEntry {
	return &cachedTableEntry{
		Table: table,
		CreationTick: tick,
		accessCount: 1,
	}
}
