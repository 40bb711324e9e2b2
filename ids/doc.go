// Package ids implements string interning and identifier-indexed containers.
//
// # Overview
//
// Strings make poor hot-path keys: their bytes are scattered and comparing
// them is O(len). This package packs all string data into one place, converts
// string-like data into a unique 32-bit identifier (UID), converts identifiers
// back to strings, and provides associative containers with O(1) lookups whose
// memory footprint can be tuned for areas with similar data.
//
// Convert strings to identifiers as early as possible and keep the ID in your
// structs; Translate involves a map lookup and should not run on hot paths.
//
// # Components
//
//   - Interner: paged append-only storage assigning stable UIDs to strings.
//   - ID / MaybeID: lightweight handles over an Interner. MaybeID is the
//     read-only probe form that never allocates into the intern table.
//   - Area: a translation table compacting a sparse integer domain into a
//     dense one, with amortized O(1) translate and two removal policies.
//   - SparseMap: values indexed directly by (optionally area-translated)
//     identifier. No removal, possible gaps.
//   - DenseMap / DenseKeyMap: values (and keys) kept fully contiguous via a
//     second, local Area layer. O(1) unordered removal, O(n) ordered removal.
//   - Set / SmallSet: unique identifier collections (bit vector vs. small
//     linear slice).
//
// # Concurrency Model
//
// Everything in this package is single-threaded and unsynchronized. Concurrent
// mutation from multiple goroutines is undefined behavior. Pointers and slices
// returned by Ptr, Take, Values and Keys are invalidated by any later mutating
// call that grows the structure; re-resolve after mutation.
//
// # Trust Boundary
//
// The containers are an internal performance layer for trusted callers.
// Absence is reported via nil pointers, false booleans, default values and -1
// sentinels, never via errors. UIDs passed to lookup methods are assumed
// valid; invalid ones panic out of the offset table rather than being
// range-checked.
package ids
