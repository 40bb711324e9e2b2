package ids

// Aliases binding the map family to common area-id widths. The N suffix is
// the capacity bound: an N-bit To domain holds at most 2^N-1 entries.

// SparseMap8 uses an area that fits at most 2^8-1 identifiers.
type SparseMap8[V any] = SparseMap[V, uint8]

// SparseMap16 uses an area that fits at most 2^16-1 identifiers.
type SparseMap16[V any] = SparseMap[V, uint16]

// SparseMap32 uses an area that fits at most 2^32-1 identifiers.
type SparseMap32[V any] = SparseMap[V, uint32]

// DenseMap8 fits at most 2^8-1 values.
type DenseMap8[V any] = DenseMap[V, UID, uint8]

// DenseMap16 fits at most 2^16-1 values.
type DenseMap16[V any] = DenseMap[V, UID, uint16]

// DenseMap32 fits at most 2^32-1 values.
type DenseMap32[V any] = DenseMap[V, UID, uint32]

// DenseKeyMap8 fits at most 2^8-1 values.
type DenseKeyMap8[V any] = DenseKeyMap[V, UID, uint8]

// DenseKeyMap16 fits at most 2^16-1 values.
type DenseKeyMap16[V any] = DenseKeyMap[V, UID, uint16]

// DenseKeyMap32 fits at most 2^32-1 values.
type DenseKeyMap32[V any] = DenseKeyMap[V, UID, uint32]
