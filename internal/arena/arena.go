// Package arena provides paged, append-only byte storage with stable offsets.
//
// # Memory Management
//
// The arena allocates fixed-size pages (4 KiB default) and bump-allocates
// within the current page. Written bytes are never relocated or individually
// freed: an offset returned by Alloc stays valid until Close. This is the
// backing store for interned strings, which live for the owning interner's
// lifetime.
//
// Pages are obtained as anonymous memory mappings so the (potentially large,
// pointer-free) string data stays outside the garbage collector's scan set.
//
// # Concurrency Model
//
// The arena is single-threaded. Callers must not share it across goroutines
// without external synchronization; it uses no locks or atomics.
package arena

import (
	"errors"
	"fmt"

	"github.com/ClickerMonkey/nage/internal/mmap"
)

var (
	// ErrClosed is returned when allocating from a closed arena.
	ErrClosed = errors.New("arena: closed")
	// ErrExhausted is returned when the 32-bit offset space is used up.
	ErrExhausted = errors.New("arena: offset space exhausted")
)

const (
	// DefaultPagePower is the default page size exponent (2^12 = 4096 bytes).
	DefaultPagePower = 12
	// maxOffsetSpace is the addressable limit of 32-bit offsets.
	maxOffsetSpace = uint64(1) << 32
)

// Stats tracks arena memory usage.
//
// Note on semantics:
//   - BytesReserved: total page memory mapped
//   - BytesUsed: bytes handed out by Alloc
//   - BytesWasted: page-tail bytes skipped when the cursor snapped to a new page
type Stats struct {
	Pages         int
	BytesReserved uint64
	BytesUsed     uint64
	BytesWasted   uint64
	Allocs        uint64
}

// Arena is a paged bump allocator addressed by 32-bit global offsets.
//
// A global offset encodes the page index in its high bits and the byte
// position within the page in its low bits:
//
//	offset = pageIndex<<pagePower | pageOffset
//
// An allocation larger than the page size gets a dedicated oversized page.
// The oversized page still occupies a single pageSize stride of the offset
// space; its tail bytes are reachable because the allocation starts at the
// page boundary.
type Arena struct {
	pagePower uint
	pageMask  uint32
	pageSize  int
	pages     []*mmap.Mapping
	cursor    uint32
	closed    bool
	stats     Stats
}

// New creates an arena with the page size 2^pagePower bytes.
// A pagePower outside [6, 30] falls back to DefaultPagePower.
func New(pagePower int) (*Arena, error) {
	if pagePower < 6 || pagePower > 30 {
		pagePower = DefaultPagePower
	}
	a := &Arena{
		pagePower: uint(pagePower),
		pageMask:  uint32(1)<<pagePower - 1,
		pageSize:  1 << pagePower,
	}
	if err := a.addPage(a.pageSize); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) addPage(size int) error {
	// Every page occupies exactly one pageSize stride of the offset space,
	// oversized or not.
	if uint64(len(a.pages)+1)<<a.pagePower > maxOffsetSpace {
		return ErrExhausted
	}
	m, err := mmap.MapAnon(size)
	if err != nil {
		return fmt.Errorf("arena: map page: %w", err)
	}
	a.pages = append(a.pages, m)
	a.stats.Pages = len(a.pages)
	a.stats.BytesReserved += uint64(size)
	return nil
}

// Alloc reserves n bytes and returns the stable global offset of the
// reservation plus a writable slice over it. The slice aliases page memory
// and stays valid until Close.
func (a *Arena) Alloc(n int) (uint32, []byte, error) {
	if a.closed {
		return 0, nil, ErrClosed
	}
	if n <= 0 {
		return 0, nil, nil
	}

	pageEnd := uint64(len(a.pages)) << a.pagePower
	if uint64(a.cursor)+uint64(n) > pageEnd {
		// An allocation over the page size gets its own oversized page.
		size := a.pageSize
		if n > size {
			size = n
		}
		if err := a.addPage(size); err != nil {
			return 0, nil, err
		}
		// Snap to the fresh page boundary; the tail of the previous page
		// is abandoned.
		a.stats.BytesWasted += pageEnd - uint64(a.cursor)
		a.cursor = uint32(pageEnd)
	}

	off := a.cursor
	pageOff := int(off & a.pageMask)
	buf := a.pages[off>>a.pagePower].Bytes()[pageOff : pageOff+n]

	// Oversized allocations advance the cursor by exactly one page stride,
	// forcing the next allocation onto a new page.
	adv := n
	if adv > a.pageSize {
		adv = a.pageSize
	}
	a.cursor += uint32(adv)
	a.stats.BytesUsed += uint64(n)
	a.stats.Allocs++

	return off, buf, nil
}

// View returns the n bytes stored at the given global offset.
// The offset and length must come from a prior Alloc; no bounds are checked
// beyond the page lookup.
func (a *Arena) View(off uint32, n int) []byte {
	pageOff := int(off & a.pageMask)
	return a.pages[off>>a.pagePower].Bytes()[pageOff : pageOff+n]
}

// PageSize returns the configured page size in bytes.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	return a.stats
}

// Close unmaps all pages. Offsets and slices handed out earlier become
// invalid. Close is idempotent.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	var err error
	for _, p := range a.pages {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	a.pages = nil
	a.cursor = 0
	return err
}

func (a *Arena) String() string {
	return fmt.Sprintf(
		"Arena{pages: %d, reserved: %d B, used: %d B, wasted: %d B, allocs: %d}",
		a.stats.Pages,
		a.stats.BytesReserved,
		a.stats.BytesUsed,
		a.stats.BytesWasted,
		a.stats.Allocs,
	)
}
