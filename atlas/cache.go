package atlas

import "sync"
import "sync/atomic"

// Bounded, concurrent-safe cache of resolved metrics tables.
//
// Entries are evicted by sampling a few of them and removing the
// coldest one. Time is measured in logical ticks, one per cache
// operation, so the heuristic only depends on usage patterns.
type Cache struct {
	tables map[Font]*cachedTableEntry
	maxEntries int
	peakEntries int
	tick uint32
	mutex sync.RWMutex
}

var defaultCache = NewCache(64)

// Returns the package level cache used by [Resolve]().
func DefaultCache() *Cache { return defaultCache }

// Resolves the font metrics through the package default cache.
// Invalid fonts return an empty table and are never cached.
func Resolve(font Font) *Table { return defaultCache.Resolve(font) }

// Creates a new cache bounded to the given number of entries.
// Negative values will panic.
func NewCache(maxEntries int) *Cache {
	if maxEntries < 0 { panic("maxEntries < 0") }
	return &Cache{
		tables: make(map[Font]*cachedTableEntry, min(maxEntries, 16)),
		maxEntries: maxEntries,
	}
}

func (self *Cache) nextTick() uint32 {
	return atomic.AddUint32(&self.tick, 1)
}

// Gets the table associated to the given font, if cached.
func (self *Cache) Get(font Font) (*Table, bool) {
	self.nextTick()
	self.mutex.RLock()
	entry, found := self.tables[font]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.IncreaseAccessCount()
	return entry.Table, true
}

// Stores the given table for the given font. The table may
// be silently dropped if the cache is full and no colder entry
// can be evicted to make room.
func (self *Cache) Put(font Font, table *Table) {
	const MaxMakeRoomAttempts = 2

	if table == nil { panic("nil table") }
	if self.maxEntries == 0 { return }
	tick := self.nextTick()
	entry := newCachedTableEntry(table, tick)

	if self.Len() >= self.maxEntries {
		hotness := entry.Hotness(tick)
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			if self.removeColdEntry(hotness, tick) { break }
		}
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, alreadyExists := self.tables[font]; alreadyExists { return }
	if len(self.tables) >= self.maxEntries { return }
	self.tables[font] = entry
	if len(self.tables) > self.peakEntries { self.peakEntries = len(self.tables) }
}

// Attempts to remove the entry with the lowest hotness from a
// small pool of samples. Entries hotter than the given threshold
// are never removed.
func (self *Cache) removeColdEntry(hotness uint32, tick uint32) bool {
	const SampleSize = 8

	self.mutex.RLock()
	var selectedKey Font
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.tables {
		currHotness := entry.Hotness(tick)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	if lowestHotness >= hotness { return false }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, stillExists := self.tables[selectedKey]
	if stillExists { delete(self.tables, selectedKey) }
	return stillExists
}

// Returns the cached table for the font, computing and storing
// it first if necessary.
func (self *Cache) Resolve(font Font) *Table {
	if !font.Valid() { return Compute(font) }
	table, found := self.Get(font)
	if found { return table }
	table = Compute(font)
	self.Put(font, table)
	return table
}

// Returns the number of cached tables.
func (self *Cache) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.tables)
}

// Returns the maximum number of entries the cache has held at
// any point. Useful to tune the cache capacity.
func (self *Cache) Peak() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.peakEntries
}

// Removes all the cached entries.
func (self *Cache) Clear() {
	self.mutex.Lock()
	clear(self.tables)
	self.mutex.Unlock()
}
