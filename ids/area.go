package ids

// Unsigned constrains the integer domains an Area can translate between.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Area maps a From integer space to a To integer space with the assumption
// that From values may be spread out (e.g. global UIDs) while To values stay
// dense and small (e.g. 0..N-1 slot indices). Containers use the area id,
// which may be a considerably narrower integer, to bound their memory while
// keeping O(1) operations.
//
// Internally a slot array is indexed by From; slot value 0 means unassigned
// and value N means assigned To N-1. The largest To ever handed out is
// exactly the number of distinct From values translated, minus removals.
//
// The To type holds at most ^To(0) distinct values. Exceeding that is a
// configuration error: Translate panics with *OverflowError and TryTranslate
// returns it.
type Area[F Unsigned, T Unsigned] struct {
	tos   []T
	next  int
	slack int
}

// NewArea creates an Area. slack controls how far beyond a requested From the
// slot array grows on resize, trading peak memory for fewer reallocations.
func NewArea[F Unsigned, T Unsigned](slack int) *Area[F, T] {
	if slack < 0 {
		slack = 0
	}
	a := &Area[F, T]{slack: slack}
	if slack > 0 {
		a.tos = make([]T, slack)
	}
	return a
}

// Translate returns the To assigned to from, assigning the next free one on
// first sight. It panics with *OverflowError when the To domain is exhausted.
func (a *Area[F, T]) Translate(from F) T {
	to, err := a.TryTranslate(from)
	if err != nil {
		panic(err)
	}
	return to
}

// TryTranslate is Translate with the To-domain overflow surfaced as an error
// instead of a panic.
func (a *Area[F, T]) TryTranslate(from F) (T, error) {
	if int(from) >= len(a.tos) {
		next := make([]T, int(from)+a.slack+1)
		copy(next, a.tos)
		a.tos = next
	}
	if a.tos[from] == 0 {
		limit := uint64(^T(0))
		if uint64(a.next) >= limit {
			return 0, &OverflowError{Limit: limit}
		}
		a.next++
		a.tos[from] = T(a.next)
	}
	return a.tos[from] - 1, nil
}

// Peek returns the To assigned to from, or -1 if from was never translated.
// It never mutates the area.
func (a *Area[F, T]) Peek(from F) int {
	if int(from) >= len(a.tos) {
		return -1
	}
	return int(a.tos[from]) - 1
}

// Has reports whether from has a translation.
func (a *Area[F, T]) Has(from F) bool {
	return int(from) < len(a.tos) && a.tos[from] != 0
}

// Remove retires from's translation and returns the To it held, or -1 if
// from was never translated.
//
// With preserveOrder, every assigned To greater than the removed one is
// decremented, keeping the relative order of remaining assignments at O(n)
// cost. Without it, the entry currently holding the maximum To is re-pointed
// at the freed To, so removal pairs with a swap-with-last in the owning
// container. Finding that entry is a linear scan of the slot array; the
// containers amortize it against their own symmetric swap-remove.
func (a *Area[F, T]) Remove(from F, preserveOrder bool) int {
	if int(from) >= len(a.tos) || a.tos[from] == 0 {
		return -1
	}
	removed := a.tos[from]
	oldMax := T(a.next)
	a.next--
	a.tos[from] = 0

	if preserveOrder {
		for i, to := range a.tos {
			if to > removed {
				a.tos[i] = to - 1
			}
		}
	} else if removed != oldMax {
		for i, to := range a.tos {
			if to == oldMax {
				a.tos[i] = removed
				break
			}
		}
	}
	return int(removed) - 1
}

// Len returns the number of live translations.
func (a *Area[F, T]) Len() int {
	return a.next
}

// Clear resets the area and releases its slot array.
func (a *Area[F, T]) Clear() {
	a.tos = nil
	a.next = 0
}
