package dfamin

import (
	"iter"
)

// Hashable is a key that supplies its own hash and equality.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. Iteration follows
// insertion order. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets    []*entry[T]
	order      []*entry[T]
	mask       uint64
	emptyValue T
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	hash  uint64
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

type OptionsHashMap func(*optionsHashMap)

// WithCapacity sets the initial bucket count, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

// WithLoadFactor sets the entries-per-bucket ratio that triggers a resize.
func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(o *optionsHashMap) {
		if loadFactor > 0 {
			o.loadFactor = loadFactor
		}
	}
}

func NewHashMap[T any](opts ...OptionsHashMap) *HashMap[T] {
	o := &optionsHashMap{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, fn := range opts {
		fn(o)
	}

	realCap := 1
	for realCap < o.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets:    make([]*entry[T], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: o.loadFactor,
	}
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	hash := key.Hash()
	index := hash & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.hash == hash && e.key.Equals(key) {
			e.value = value
			return
		}
	}

	e := &entry[T]{
		key:   key,
		hash:  hash,
		value: value,
		next:  m.buckets[index],
	}
	m.buckets[index] = e
	m.order = append(m.order, e)

	if float64(len(m.order))/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	hash := key.Hash()
	for e := m.buckets[hash&m.mask]; e != nil; e = e.next {
		if e.hash == hash && e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newMask := uint64(newCap - 1)
	newBuckets := make([]*entry[T], newCap)

	for _, e := range m.order {
		index := e.hash & newMask
		e.next = newBuckets[index]
		newBuckets[index] = e
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size returns the number of keys.
func (m *HashMap[T]) Size() int {
	return len(m.order)
}

// Iterator yields entries in insertion order.
func (m *HashMap[T]) Iterator() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, e := range m.order {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
