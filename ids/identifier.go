package ids

// ID is a lightweight handle to an interned string: a UID plus the interner
// it belongs to. It owns nothing and dereferences through the interner on
// demand. Two IDs built from equal text on the same interner compare equal.
//
// The zero ID is the empty string with no interner attached.
type ID struct {
	uid UID
	in  *Interner
}

// ID interns text (allocating if needed) and returns its handle.
func (in *Interner) ID(text string) ID {
	return ID{uid: in.Translate(text), in: in}
}

// FromUID wraps an already resolved UID. The UID is assumed valid; no
// validation is performed.
func (in *Interner) FromUID(uid UID) ID {
	return ID{uid: uid, in: in}
}

// UID returns the unique id of the interned string.
func (id ID) UID() UID {
	return id.uid
}

// Bytes returns the interned bytes without copying. The slice aliases page
// storage and must not be modified.
func (id ID) Bytes() []byte {
	if id.in == nil {
		return nil
	}
	return id.in.LookupBytes(id.uid)
}

// String returns the interned text, copying out of page storage.
func (id ID) String() string {
	if id.in == nil {
		return ""
	}
	return id.in.Lookup(id.uid)
}

// Len returns the length of the interned text in bytes.
func (id ID) Len() int {
	return len(id.Bytes())
}

// Equal reports whether two IDs name the same interned string. Only the uid
// is compared; interning makes that equivalent to byte equality.
func (id ID) Equal(other ID) bool {
	return id.uid == other.uid
}

// Maybe reports the identity of an interned string without allocating.
//
// Use it on read paths: looking up text that was never interned yields a
// MaybeID that does not exist, and no identifier is created as a side effect.
type MaybeID struct {
	uid UID
	ok  bool
	in  *Interner
}

// Maybe probes for text read-only. If the text was never interned the result
// reports Exists() == false and all accessors return empty values.
func (in *Interner) Maybe(text string) MaybeID {
	uid, ok := in.Peek(text)
	if !ok {
		return MaybeID{}
	}
	return MaybeID{uid: uid, ok: true, in: in}
}

// Exists reports whether the probed text had been interned.
func (m MaybeID) Exists() bool {
	return m.ok
}

// UID returns the unique id and whether it exists.
func (m MaybeID) UID() (UID, bool) {
	return m.uid, m.ok
}

// ID returns the full handle, or the zero ID when the text was not found.
func (m MaybeID) ID() ID {
	if !m.ok {
		return ID{}
	}
	return ID{uid: m.uid, in: m.in}
}

// Bytes returns the interned bytes, or nil when the text was not found.
func (m MaybeID) Bytes() []byte {
	if !m.ok {
		return nil
	}
	return m.in.LookupBytes(m.uid)
}

// String returns the interned text, or "" when the text was not found.
func (m MaybeID) String() string {
	if !m.ok {
		return ""
	}
	return m.in.Lookup(m.uid)
}
