package ids

// DenseMap keeps all values contiguous in memory, in initial set order unless
// an order-agnostic remove has been performed. It composes two Area layers:
// an optional shared area compacting UIDs into area ids, and an owned local
// area mapping area ids to packed slots in the values slice. Use it when data
// should sit close together and iteration must touch only live entries.
//
// Removal supports two policies: order-preserving removal shifts later
// entries down at O(n) cost; order-agnostic removal swaps the last entry into
// the freed slot at O(1) amortized cost.
//
// A is the area id type, L the local slot type; each bounds the map to
// ^A(0) / ^L(0) entries. Without a shared area the raw UID is narrowed
// directly to A, so choose A at least as wide as the UIDs in play.
type DenseMap[V any, A Unsigned, L Unsigned] struct {
	area   *Area[UID, A]
	local  Area[A, L]
	values []V
}

// NewDenseMap creates an empty dense map whose local area grows to fit the
// largest identifier used.
func NewDenseMap[V any, A Unsigned, L Unsigned]() *DenseMap[V, A, L] {
	return &DenseMap[V, A, L]{}
}

// WithArea shares an external translation area, bounding the local area to
// the largest area id instead of the largest UID. The area is borrowed, never
// owned. Returns the map for chaining.
func (m *DenseMap[V, A, L]) WithArea(area *Area[UID, A]) *DenseMap[V, A, L] {
	m.area = area
	return m
}

// Values exposes the packed values, in set order unless an order-agnostic
// remove has run. The slice is invalidated by any later mutating call.
func (m *DenseMap[V, A, L]) Values() []V {
	return m.values
}

// Len returns the number of live entries.
func (m *DenseMap[V, A, L]) Len() int {
	return len(m.values)
}

// Take returns a pointer to the value slot for id, appending a zero-valued
// entry if the identifier is new. Take is the universal insertion primitive;
// Set is sugar over it.
//
// The pointer is invalidated by any later mutating call.
func (m *DenseMap[V, A, L]) Take(id ID) *V {
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
	}
	return &m.values[localID]
}

// Set adds or updates the value for id.
func (m *DenseMap[V, A, L]) Set(id ID, value V) {
	*m.Take(id) = value
}

// Get returns the value for id, or the zero value of V if the identifier was
// never set or taken. It never grows the map.
func (m *DenseMap[V, A, L]) Get(id ID) V {
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
func (m *DenseMap[V, A, L]) Ptr(id ID) *V {
	localID := m.peek(id.uid)
	if localID < 0 || localID >= len(m.values) {
		return nil
	}
	return &m.values[localID]
}

// peek resolves a UID through both area layers without mutating either.
func (m *DenseMap[V, A, L]) peek(uid UID) int {
	var areaID A
	if m.area == nil {
		areaID = A(uid)
	} else {
		peeked := m.area.Peek(uid)
		if peeked < 0 {
			return -1
		}
		areaID = A(peeked)
	}
	return m.local.Peek(areaID)
}

// GetMaybe is Get for a read-only probe.
func (m *DenseMap[V, A, L]) GetMaybe(mid MaybeID) V {
	if p := m.PtrMaybe(mid); p != nil {
		return *p
	}
	var zero V
	return zero
}

// PtrMaybe is Ptr for a read-only probe.
func (m *DenseMap[V, A, L]) PtrMaybe(mid MaybeID) *V {
	if !mid.ok {
		return nil
	}
	return m.Ptr(mid.ID())
}

// TakeText interns text on in and takes its slot. May generate an identifier.
func (m *DenseMap[V, A, L]) TakeText(in *Interner, text string) *V {
	return m.Take(in.ID(text))
}

// SetText interns text on in and sets its value. May generate an identifier.
func (m *DenseMap[V, A, L]) SetText(in *Interner, text string, value V) {
	*m.TakeText(in, text) = value
}

// GetText looks text up read-only; it never generates an identifier.
func (m *DenseMap[V, A, L]) GetText(in *Interner, text string) V {
	return m.GetMaybe(in.Maybe(text))
}

// Remove deletes the entry for id, reporting whether it existed.
//
// With preserveOrder the remaining values keep their relative order and the
// removal costs O(n). Without it the last value is swapped into the freed
// slot in O(1), mirroring the local area's relocation of its maximum slot.
func (m *DenseMap[V, A, L]) Remove(id ID, preserveOrder bool) bool {
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
	} else {
		m.values[localID] = m.values[last]
	}
	var zero V
	m.values[last] = zero
	m.values = m.values[:last]
	return true
}

// Clear drops all values and the local area. A shared area is left untouched.
func (m *DenseMap[V, A, L]) Clear() {
	m.local.Clear()
	m.values = nil
}
