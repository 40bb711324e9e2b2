package ids

// SparseMap stores values indexed by identifier, potentially with unset
// slots scattered throughout. There is no way to know whether an identifier
// was ever added: absent entries read back as the zero value of V, and the
// caller decides whether a value "looks set" if it cares (a field on V, V
// being a pointer type, etc). There is no removal.
//
// Without an area the raw UID indexes the values slice directly, so the map
// grows to fit the largest UID used. With a shared area it grows only to fit
// the largest area id, which can be much smaller when several maps are keyed
// by the same region of identifiers. The area is borrowed, never owned; its
// lifetime must exceed the map's.
type SparseMap[V any, S Unsigned] struct {
	area   *Area[UID, S]
	values []V
	slack  int
}

// NewSparseMap creates an empty sparse map that grows to fit the largest
// identifier used.
func NewSparseMap[V any, S Unsigned]() *SparseMap[V, S] {
	return &SparseMap[V, S]{}
}

// WithArea shares an external translation area, bounding growth to the
// largest area id instead of the largest UID. Returns the map for chaining.
func (m *SparseMap[V, S]) WithArea(area *Area[UID, S]) *SparseMap[V, S] {
	m.area = area
	return m
}

// WithSlack sets how far beyond a required index the values slice grows on
// resize. Returns the map for chaining.
func (m *SparseMap[V, S]) WithSlack(slack int) *SparseMap[V, S] {
	if slack < 0 {
		slack = 0
	}
	m.slack = slack
	return m
}

// index resolves an identifier to a values index without mutating anything.
// Negative means unresolvable.
func (m *SparseMap[V, S]) index(uid UID) int {
	if m.area == nil {
		return int(uid)
	}
	return m.area.Peek(uid)
}

// Take returns a pointer to the value slot for id, creating a zero-valued
// slot (and growing the map) if needed. Take is the universal insertion
// primitive; Set is sugar over it.
//
// The pointer is invalidated by any later call that grows the map.
func (m *SparseMap[V, S]) Take(id ID) *V {
	var idx int
	if m.area == nil {
		idx = int(id.uid)
	} else {
		idx = int(m.area.Translate(id.uid))
	}
	if idx >= len(m.values) {
		next := make([]V, idx+m.slack+1)
		copy(next, m.values)
		m.values = next
	}
	return &m.values[idx]
}

// Set adds or updates the value for id.
func (m *SparseMap[V, S]) Set(id ID, value V) {
	*m.Take(id) = value
}

// Get returns the value for id, or the zero value of V if the identifier
// falls outside the map. It never grows the map.
func (m *SparseMap[V, S]) Get(id ID) V {
	if p := m.Ptr(id); p != nil {
		return *p
	}
	var zero V
	return zero
}

// Ptr returns a pointer to the value slot for id, or nil if the identifier
// falls outside the map. A non-nil pointer does not mean the value was ever
// explicitly set; this is a sparse map.
//
// The pointer is invalidated by any later call that grows the map.
func (m *SparseMap[V, S]) Ptr(id ID) *V {
	idx := m.index(id.uid)
	if idx >= 0 && idx < len(m.values) {
		return &m.values[idx]
	}
	return nil
}

// GetMaybe is Get for a read-only probe. A not-found probe yields the zero
// value without touching the intern table or the map.
func (m *SparseMap[V, S]) GetMaybe(mid MaybeID) V {
	if p := m.PtrMaybe(mid); p != nil {
		return *p
	}
	var zero V
	return zero
}

// PtrMaybe is Ptr for a read-only probe.
func (m *SparseMap[V, S]) PtrMaybe(mid MaybeID) *V {
	if !mid.ok {
		return nil
	}
	return m.Ptr(mid.ID())
}

// TakeText interns text on in and takes its slot. May generate an identifier.
func (m *SparseMap[V, S]) TakeText(in *Interner, text string) *V {
	return m.Take(in.ID(text))
}

// SetText interns text on in and sets its value. May generate an identifier.
func (m *SparseMap[V, S]) SetText(in *Interner, text string, value V) {
	*m.TakeText(in, text) = value
}

// GetText looks text up read-only; it never generates an identifier.
func (m *SparseMap[V, S]) GetText(in *Interner, text string) V {
	return m.GetMaybe(in.Maybe(text))
}

// Clear drops all values. A shared area is left untouched.
func (m *SparseMap[V, S]) Clear() {
	m.values = nil
}
