package mmap

// Mapping is an anonymous read-write memory mapping.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	size   int
	closed bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// MapAnon creates an anonymous read-write mapping of the given size.
func MapAnon(size int) (*Mapping, error) {
	data, unmapFunc, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}
	return &Mapping{
		data:  data,
		size:  size,
		unmap: unmapFunc,
	}, nil
}

// Bytes returns the underlying byte slice.
// The slice is valid only until Close is called.
func (m *Mapping) Bytes() []byte {
	if m.closed {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	if m.unmap != nil && m.data != nil {
		err := m.unmap(m.data)
		m.data = nil
		return err
	}
	m.data = nil
	return nil
}
