package ids

import "iter"

// DenseKeyMap is a DenseMap that additionally stores the key alongside each
// value: keys[i] and values[i] always refer to the same logical entry. Use it
// when iteration needs to know which identifier owns each value.
type DenseKeyMap[V any, A Unsigned, L Unsigned] struct {
	area   *Area[UID, A]
	local  Area[A, L]
	values []V
	keys   []ID
}

// NewDenseKeyMap creates an empty dense key map whose local area grows to fit
// the largest identifier used.
func NewDenseKeyMap[V any, A Unsigned, L Unsigned]() *DenseKeyMap[V, A, L] {
	return &DenseKeyMap[V, A, L]{}
}

// WithArea shares an external translation area. The area is borrowed, never
// owned. Returns the map for chaining.
func (m *DenseKeyMap[V, A, L]) WithArea(area *Area[UID, A]) *DenseKeyMap[V, A, L] {
	m.area = area
	return m
}

// Values exposes the packed values, in set order unless an order-agnostic
// remove has run. The slice is invalidated by any later mutating call.
func (m *DenseKeyMap[V, A, L]) Values() []V {
	return m.values
}

// Keys exposes the packed keys, parallel to Values. The slice is invalidated
// by any later mutating call.
func (m *DenseKeyMap[V, A, L]) Keys() []ID {
	return m.keys
}

// Len returns the number of live entries.
func (m *DenseKeyMap[V, A, L]) Len() int {
	return len(m.values)
}

// All iterates over key/value pairs in packed order.
func (m *DenseKeyMap[V, A, L]) All() iter.Seq2[ID, V] {
	return func(yield func(ID, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// Take returns a pointer to the value slot for id, appending a zero-valued
// entry (and recording the key) if the identifier is new.
//
// The pointer is invalidated by any later mutating call.
func (m *DenseKeyMap[V, A, L]) Take(id ID) *V {
	var areaID A
	if m.area == nil {
		areaID = A(id.uid)
	} else {
		areaID = m.area.Translate(id.uid)
	}
	localID := m.local.Translate(areaID)
	if int(localID) == len(m.values) {
		var zero V
		m.values = append(m.values, zero)
		m.keys = append(m.keys, id)
	}
	return &m.values[localID]
}

// Set adds or updates the value for id.
func (m *DenseKeyMap[V, A, L]) Set(id ID, value V) {
	*m.Take(id) = value
}

// Get returns the value for id, or the zero value of V if the identifier was
// never set or taken. It never grows the map.
func (m *DenseKeyMap[V, A, L]) Get(id ID) V {
	if p := m.Ptr(id); p != nil {
		return *p
	}
	var zero V
	return zero
}

// Ptr returns a pointer to the value for id, or nil if the identifier was
// never set or taken.
//
// The pointer is invalidated by any later mutating call.
func (m *DenseKeyMap[V, A, L]) Ptr(id ID) *V {
	var areaID A
	if m.area == nil {
		areaID = A(id.uid)
	} else {
		peeked := m.area.Peek(id.uid)
		if peeked < 0 {
			return nil
		}
		areaID = A(peeked)
	}
	localID := m.local.Peek(areaID)
	if localID < 0 || localID >= len(m.values) {
		return nil
	}
	return &m.values[localID]
}

// GetMaybe is Get for a read-only probe.
func (m *DenseKeyMap[V, A, L]) GetMaybe(mid MaybeID) V {
	if p := m.PtrMaybe(mid); p != nil {
		return *p
	}
	var zero V
	return zero
}

// PtrMaybe is Ptr for a read-only probe.
func (m *DenseKeyMap[V, A, L]) PtrMaybe(mid MaybeID) *V {
	if !mid.ok {
		return nil
	}
	return m.Ptr(mid.ID())
}

// TakeText interns text on in and takes its slot. May generate an identifier.
func (m *DenseKeyMap[V, A, L]) TakeText(in *Interner, text string) *V {
	return m.Take(in.ID(text))
}

// SetText interns text on in and sets its value. May generate an identifier.
func (m *DenseKeyMap[V, A, L]) SetText(in *Interner, text string, value V) {
	*m.TakeText(in, text) = value
}

// GetText looks text up read-only; it never generates an identifier.
func (m *DenseKeyMap[V, A, L]) GetText(in *Interner, text string) V {
	return m.GetMaybe(in.Maybe(text))
}

// Remove deletes the entry for id, reporting whether it existed. Keys and
// values are mutated in lockstep under both removal policies.
func (m *DenseKeyMap[V, A, L]) Remove(id ID, preserveOrder bool) bool {
	var areaID A
	if m.area == nil {
		areaID = A(id.uid)
	} else {
		peeked := m.area.Peek(id.uid)
		if peeked < 0 {
			return false
		}
		areaID = A(peeked)
	}
	localID := m.local.Remove(areaID, preserveOrder)
	if localID < 0 {
		return false
	}
	last := len(m.values) - 1
	if preserveOrder {
		copy(m.values[localID:], m.values[localID+1:])
		copy(m.keys[localID:], m.keys[localID+1:])
	} else {
		m.values[localID] = m.values[last]
		m.keys[localID] = m.keys[last]
	}
	var zero V
	m.values[last] = zero
	m.keys[last] = ID{}
	m.values = m.values[:last]
	m.keys = m.keys[:last]
	return true
}

// Clear drops all keys, values and the local area. A shared area is left
// untouched.
func (m *DenseKeyMap[V, A, L]) Clear() {
	m.local.Clear()
	m.values = nil
	m.keys = nil
}
