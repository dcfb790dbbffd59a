// Package hashindex implements an open-addressed K→V map whose buckets
// fuse an occupancy flag into the cached hash word, grounded on WAVM's
// Inline/HashMap.h (see Include/WAVM/Inline/Impl/HashMapImpl.h in
// original_source/). The core uses it for symbol and metadata lookup
// (internal/codegen's symbol manifest, internal/compartment's table
// registry).
package hashindex

const occupiedBit = uint64(1) << 63

// Hasher computes a 63-bit (or fewer) hash for K. The top bit is reserved
// for the occupancy flag and is masked off internally, so callers don't
// need to avoid it.
type Hasher[K comparable] func(key K) uint64

// Index is an open-addressed hash map from K to V.
//
// The only behaviors callers may depend on (per spec.md §4.4): reads never
// construct, Add/Set are idempotent with respect to repeated equal keys,
// and Range visits every present pair exactly once in an unspecified order.
type Index[K comparable, V any] struct {
	hash    Hasher[K]
	buckets []bucket[K, V]
	count   int
}

type bucket[K comparable, V any] struct {
	hashAndOccupancy uint64
	key              K
	value            V
}

func (b *bucket[K, V]) occupied() bool { return b.hashAndOccupancy&occupiedBit != 0 }

// New returns an empty Index using hash to compute bucket positions.
func New[K comparable, V any](hash Hasher[K]) *Index[K, V] {
	return &Index[K, V]{hash: hash, buckets: make([]bucket[K, V], 8)}
}

// Len returns the number of present pairs.
func (idx *Index[K, V]) Len() int { return idx.count }

func (idx *Index[K, V]) keyHash(key K) uint64 { return idx.hash(key) &^ occupiedBit }

// findBucket returns the index of the bucket holding key, or the index of
// the first free bucket probed if key is absent, reporting in present
// which of the two it found.
func (idx *Index[K, V]) findBucket(key K, h uint64) (pos int, present bool) {
	mask := len(idx.buckets) - 1
	i := int(h) & mask
	for {
		b := &idx.buckets[i]
		if !b.occupied() {
			return i, false
		}
		if b.hashAndOccupancy == h|occupiedBit && b.key == key {
			return i, true
		}
		i = (i + 1) & mask
	}
}

func (idx *Index[K, V]) growIfNeeded() {
	// Keep load factor under 0.7, matching common open-addressing practice;
	// WAVM's underlying HashTable grows on the same kind of threshold.
	if idx.count*10 < len(idx.buckets)*7 {
		return
	}
	old := idx.buckets
	idx.buckets = make([]bucket[K, V], len(old)*2)
	idx.count = 0
	for i := range old {
		if old[i].occupied() {
			idx.insertAssumeAbsent(old[i].key, old[i].value, old[i].hashAndOccupancy&^occupiedBit)
		}
	}
}

func (idx *Index[K, V]) insertAssumeAbsent(key K, value V, h uint64) {
	pos, _ := idx.findBucket(key, h)
	idx.buckets[pos] = bucket[K, V]{hashAndOccupancy: h | occupiedBit, key: key, value: value}
	idx.count++
}

// Add inserts key/value if key is absent, returning false without
// modifying the map if it was already present.
func (idx *Index[K, V]) Add(key K, value V) bool {
	idx.growIfNeeded()
	h := idx.keyHash(key)
	pos, present := idx.findBucket(key, h)
	if present {
		return false
	}
	idx.buckets[pos] = bucket[K, V]{hashAndOccupancy: h | occupiedBit, key: key, value: value}
	idx.count++
	return true
}

// AddOrFail inserts key/value. The caller must have already established
// key is absent; violating that is a programmer error.
func (idx *Index[K, V]) AddOrFail(key K, value V) {
	if !idx.Add(key, value) {
		panic("hashindex: AddOrFail called with a key already present")
	}
}

// GetOrAdd returns the value for key, constructing it via newValue and
// inserting it first if absent.
func (idx *Index[K, V]) GetOrAdd(key K, newValue func() V) V {
	idx.growIfNeeded()
	h := idx.keyHash(key)
	pos, present := idx.findBucket(key, h)
	if present {
		return idx.buckets[pos].value
	}
	v := newValue()
	idx.buckets[pos] = bucket[K, V]{hashAndOccupancy: h | occupiedBit, key: key, value: v}
	idx.count++
	return v
}

// Set inserts or replaces the value for key.
func (idx *Index[K, V]) Set(key K, value V) {
	idx.growIfNeeded()
	h := idx.keyHash(key)
	pos, _ := idx.findBucket(key, h)
	occupied := idx.buckets[pos].occupied()
	idx.buckets[pos] = bucket[K, V]{hashAndOccupancy: h | occupiedBit, key: key, value: value}
	if !occupied {
		idx.count++
	}
}

// Get returns the value for key and whether it was present.
func (idx *Index[K, V]) Get(key K) (V, bool) {
	h := idx.keyHash(key)
	pos, present := idx.findBucket(key, h)
	if !present {
		var zero V
		return zero, false
	}
	return idx.buckets[pos].value, true
}

// Contains reports whether key is present.
func (idx *Index[K, V]) Contains(key K) bool {
	_, present := idx.findBucket(key, idx.keyHash(key))
	return present
}

// At returns the value for key. The caller must have already established
// key is present; violating that is a programmer error.
func (idx *Index[K, V]) At(key K) V {
	v, ok := idx.Get(key)
	if !ok {
		panic("hashindex: At called with an absent key")
	}
	return v
}

// Remove deletes key if present, reporting whether it was.
func (idx *Index[K, V]) Remove(key K) bool {
	h := idx.keyHash(key)
	pos, present := idx.findBucket(key, h)
	if !present {
		return false
	}
	idx.deleteAndRehashCluster(pos)
	idx.count--
	return true
}

// RemoveOrFail deletes key, which the caller must have established is present.
func (idx *Index[K, V]) RemoveOrFail(key K) {
	if !idx.Remove(key) {
		panic("hashindex: RemoveOrFail called with an absent key")
	}
}

// deleteAndRehashCluster clears bucket pos and re-inserts the remainder of
// its probe cluster, since linear probing can't leave a hole mid-cluster.
func (idx *Index[K, V]) deleteAndRehashCluster(pos int) {
	mask := len(idx.buckets) - 1
	idx.buckets[pos] = bucket[K, V]{}
	i := (pos + 1) & mask
	for idx.buckets[i].occupied() {
		b := idx.buckets[i]
		idx.buckets[i] = bucket[K, V]{}
		idx.count--
		idx.insertAssumeAbsent(b.key, b.value, b.hashAndOccupancy&^occupiedBit)
		i = (i + 1) & mask
	}
}

// Range calls fn for every present pair in an unspecified order, stopping
// early if fn returns false.
func (idx *Index[K, V]) Range(fn func(key K, value V) bool) {
	for i := range idx.buckets {
		if idx.buckets[i].occupied() {
			if !fn(idx.buckets[i].key, idx.buckets[i].value) {
				return
			}
		}
	}
}
