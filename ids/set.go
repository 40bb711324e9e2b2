package ids

import (
	"iter"
	"math/bits"
)

// Set is a unique collection of identifiers backed by a growable bit vector:
// presence of uid is a set bit. Add, Has and Remove are O(1); iteration
// scans words with trailing-zero counts and skips zero words, yielding uids
// in ascending order. Memory is proportional to the largest uid added, one
// bit per possible uid.
type Set struct {
	words []uint64
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add inserts id into the set. Adding an existing id is a no-op. The bit
// storage grows to cover id's word if necessary.
func (s *Set) Add(id ID) {
	word := int(id.uid >> 6)
	if word >= len(s.words) {
		grown := make([]uint64, word+1)
		copy(grown, s.words)
		s.words = grown
	}
	s.words[word] |= 1 << (id.uid & 63)
}

// Has reports whether the probed identifier is in the set. A probe that
// found no identifier is never present, and the bit storage is not touched.
func (s *Set) Has(mid MaybeID) bool {
	if !mid.ok {
		return false
	}
	return s.HasID(mid.ID())
}

// HasID reports whether id is in the set.
func (s *Set) HasID(id ID) bool {
	word := int(id.uid >> 6)
	if word >= len(s.words) {
		return false
	}
	return s.words[word]&(1<<(id.uid&63)) != 0
}

// Remove clears the probed identifier's bit if present; otherwise a no-op.
func (s *Set) Remove(mid MaybeID) {
	if !mid.ok {
		return
	}
	uid := mid.uid
	word := int(uid >> 6)
	if word >= len(s.words) {
		return
	}
	s.words[word] &^= 1 << (uid & 63)
}

// Count returns the number of identifiers in the set.
func (s *Set) Count() int {
	count := 0
	for _, w := range s.words {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// All iterates over the contained uids in ascending order. Each call starts
// a fresh scan.
func (s *Set) All() iter.Seq[UID] {
	return func(yield func(UID) bool) {
		for i, w := range s.words {
			for w != 0 {
				bit := bits.TrailingZeros64(w)
				if !yield(UID(i<<6 + bit)) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Clear removes all identifiers and releases the bit storage.
func (s *Set) Clear() {
	s.words = nil
}

// SmallSet is a unique collection of identifiers kept in an unordered slice,
// with O(n) Has and Remove by linear scan. It iterates in insertion order
// (until a Remove swaps entries) and carries no per-uid bit overhead, making
// it the better choice when the expected cardinality is small, tens of
// entries at most. Beyond that, use Set.
type SmallSet struct {
	items []ID
}

// NewSmallSet creates an empty SmallSet.
func NewSmallSet() *SmallSet {
	return &SmallSet{}
}

// Add inserts id into the set. Adding an existing id is a no-op.
func (s *SmallSet) Add(id ID) {
	for _, item := range s.items {
		if item.uid == id.uid {
			return
		}
	}
	s.items = append(s.items, id)
}

// Has reports whether the probed identifier is in the set.
func (s *SmallSet) Has(mid MaybeID) bool {
	if !mid.ok {
		return false
	}
	for _, item := range s.items {
		if item.uid == mid.uid {
			return true
		}
	}
	return false
}

// HasID reports whether id is in the set.
func (s *SmallSet) HasID(id ID) bool {
	for _, item := range s.items {
		if item.uid == id.uid {
			return true
		}
	}
	return false
}

// Remove deletes the probed identifier if present, swapping the last entry
// into its place; otherwise a no-op.
func (s *SmallSet) Remove(mid MaybeID) {
	if !mid.ok {
		return
	}
	for i, item := range s.items {
		if item.uid == mid.uid {
			last := len(s.items) - 1
			s.items[i] = s.items[last]
			s.items[last] = ID{}
			s.items = s.items[:last]
			return
		}
	}
}

// Count returns the number of identifiers in the set.
func (s *SmallSet) Count() int {
	return len(s.items)
}

// All iterates over the contained identifiers in insertion order.
func (s *SmallSet) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Clear removes all identifiers.
func (s *SmallSet) Clear() {
	s.items = nil
}
