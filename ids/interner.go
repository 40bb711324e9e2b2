package ids

import (
	"fmt"
	"iter"

	"github.com/ClickerMonkey/nage/internal/arena"
)

// UID is the unique integer handle for an interned string. Two strings with
// equal bytes always intern to the same UID for the lifetime of the Interner.
// UID 0 is reserved for the empty string.
type UID uint32

// span locates one interned string inside the arena.
type span struct {
	off uint32 // global arena offset of the first byte
	n   uint32 // length in bytes, excluding the terminator
}

// Interner owns all interned string data and tracks every identifier created.
//
// It is an explicit context object: multiple isolated interners may coexist
// (useful for tests), and identifiers from one interner are meaningless in
// another. Interned strings are never removed or relocated; pages are released
// only by Close.
type Interner struct {
	arena    *arena.Arena
	lookup   map[string]UID
	spans    []span
	logger   *Logger
	compress bool
}

// New creates an Interner. UID 0 (the empty string) is reserved immediately.
func New(opts ...Option) (*Interner, error) {
	o := options{
		pagePower: arena.DefaultPagePower,
		logger:    NewLogger(nil),
	}
	for _, opt := range opts {
		opt(&o)
	}

	a, err := arena.New(o.pagePower)
	if err != nil {
		return nil, err
	}

	in := &Interner{
		arena:    a,
		lookup:   make(map[string]UID),
		spans:    make([]span, 0, 16),
		logger:   o.logger,
		compress: o.compress,
	}

	// Reserve uid 0 for the empty string: one terminator byte at offset 0.
	off, buf, err := a.Alloc(1)
	if err != nil {
		a.Close()
		return nil, err
	}
	buf[0] = 0
	in.spans = append(in.spans, span{off: off, n: 0})

	return in, nil
}

// Translate returns the existing UID for previously seen text or assigns a
// new one, copying the bytes into page storage. Empty text is always UID 0.
//
// Translate may allocate a new page. It never fails for expected reasons;
// running out of 32-bit offset space or page mappings is a configuration
// error and panics.
func (in *Interner) Translate(text string) UID {
	if text == "" {
		return 0
	}
	if uid, ok := in.lookup[text]; ok {
		return uid
	}

	pagesBefore := in.arena.Stats().Pages

	// Content plus one terminator byte, matching the on-page layout the
	// offsets were designed around.
	n := len(text) + 1
	off, buf, err := in.arena.Alloc(n)
	if err != nil {
		panic(fmt.Errorf("ids: intern %q: %w", text, err))
	}
	copy(buf, text)
	buf[n-1] = 0

	uid := UID(len(in.spans))
	in.spans = append(in.spans, span{off: off, n: uint32(len(text))})
	in.lookup[text] = uid

	if pages := in.arena.Stats().Pages; pages > pagesBefore {
		in.logger.Debug("allocated string page",
			"pages", pages,
			"uid", uint32(uid),
			"bytes", n,
		)
	}

	return uid
}

// Peek returns the UID for text if it was interned before. It never mutates
// the intern table. Empty text reports UID 0, which always exists.
func (in *Interner) Peek(text string) (UID, bool) {
	if text == "" {
		return 0, true
	}
	uid, ok := in.lookup[text]
	return uid, ok
}

// LookupBytes resolves a UID to its stored bytes without copying. The slice
// aliases page memory and must not be modified.
//
// The UID must be valid; an unknown one panics out of the offset table.
func (in *Interner) LookupBytes(uid UID) []byte {
	s := in.spans[uid]
	return in.arena.View(s.off, int(s.n))
}

// Lookup resolves a UID to its string, copying out of page storage.
// The UID must be valid; an unknown one panics out of the offset table.
func (in *Interner) Lookup(uid UID) string {
	return string(in.LookupBytes(uid))
}

// Len returns the number of assigned identifiers, including the reserved
// empty string.
func (in *Interner) Len() int {
	return len(in.spans)
}

// PageSize returns the configured page size in bytes.
func (in *Interner) PageSize() int {
	return in.arena.PageSize()
}

// All iterates over every identifier in ascending UID order.
func (in *Interner) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for uid := range len(in.spans) {
			if !yield(ID{uid: UID(uid), in: in}) {
				return
			}
		}
	}
}

// Close releases all string pages. Every ID, byte slice and container backed
// by this interner becomes invalid.
func (in *Interner) Close() error {
	return in.arena.Close()
}

func (in *Interner) String() string {
	return fmt.Sprintf("Interner{ids: %d, %s}", len(in.spans), in.arena)
}
