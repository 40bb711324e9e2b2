// Package tagindex maintains an inverted membership index over interned
// identifiers: each tag maps to the set of members carrying it. Registries
// use it to answer "everything tagged X" without scanning their entries.
//
// Member sets are compressed roaring bitmaps, which stay compact whether a
// tag covers three members or three million. Like the rest of the identifier
// subsystem, an Index is single-threaded.
package tagindex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/ClickerMonkey/nage/ids"
)

// Index maps tag identifiers to bitmap sets of member identifiers.
type Index struct {
	in   *ids.Interner
	tags *ids.DenseKeyMap16[*roaring.Bitmap]
}

// New creates an empty index over identifiers of the given interner.
func New(in *ids.Interner) *Index {
	return &Index{
		in:   in,
		tags: ids.NewDenseKeyMap[*roaring.Bitmap, ids.UID, uint16](),
	}
}

// Tag adds member to tag's set, creating the tag on first use.
func (x *Index) Tag(member, tag ids.ID) {
	p := x.tags.Take(tag)
	if *p == nil {
		*p = roaring.New()
	}
	(*p).Add(uint32(member.UID()))
}

// Untag removes member from the probed tag's set; a no-op when the tag was
// never used.
func (x *Index) Untag(member ids.ID, tag ids.MaybeID) {
	if p := x.tags.PtrMaybe(tag); p != nil && *p != nil {
		(*p).Remove(uint32(member.UID()))
	}
}

// HasTag reports whether member carries the probed tag.
func (x *Index) HasTag(member ids.ID, tag ids.MaybeID) bool {
	bm := x.tags.GetMaybe(tag)
	return bm != nil && bm.Contains(uint32(member.UID()))
}

// Cardinality returns the number of members carrying the probed tag.
func (x *Index) Cardinality(tag ids.MaybeID) uint64 {
	bm := x.tags.GetMaybe(tag)
	if bm == nil {
		return 0
	}
	return bm.GetCardinality()
}

// Tags iterates over every tag ever used, in first-use order.
func (x *Index) Tags() iter.Seq[ids.ID] {
	return func(yield func(ids.ID) bool) {
		for _, tag := range x.tags.Keys() {
			if !yield(tag) {
				return
			}
		}
	}
}

// TagsOf iterates over the tags member carries, in tag first-use order.
func (x *Index) TagsOf(member ids.ID) iter.Seq[ids.ID] {
	uid := uint32(member.UID())
	return func(yield func(ids.ID) bool) {
		for tag, bm := range x.tags.All() {
			if bm != nil && bm.Contains(uid) {
				if !yield(tag) {
					return
				}
			}
		}
	}
}

// TaggedWith iterates over the members of the probed tag in ascending uid
// order.
func (x *Index) TaggedWith(tag ids.MaybeID) iter.Seq[ids.ID] {
	bm := x.tags.GetMaybe(tag)
	return x.members(bm)
}

// AnyOf iterates over members carrying at least one of the probed tags, in
// ascending uid order.
func (x *Index) AnyOf(tags ...ids.MaybeID) iter.Seq[ids.ID] {
	var found []*roaring.Bitmap
	for _, tag := range tags {
		if bm := x.tags.GetMaybe(tag); bm != nil {
			found = append(found, bm)
		}
	}
	if len(found) == 0 {
		return x.members(nil)
	}
	return x.members(roaring.FastOr(found...))
}

// AllOf iterates over members carrying every one of the probed tags, in
// ascending uid order. A tag that was never used matches nothing.
func (x *Index) AllOf(tags ...ids.MaybeID) iter.Seq[ids.ID] {
	if len(tags) == 0 {
		return x.members(nil)
	}
	var found []*roaring.Bitmap
	for _, tag := range tags {
		bm := x.tags.GetMaybe(tag)
		if bm == nil {
			return x.members(nil)
		}
		found = append(found, bm)
	}
	return x.members(roaring.FastAnd(found...))
}

func (x *Index) members(bm *roaring.Bitmap) iter.Seq[ids.ID] {
	return func(yield func(ids.ID) bool) {
		if bm == nil {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(x.in.FromUID(ids.UID(it.Next()))) {
				return
			}
		}
	}
}

// Clear drops every tag set.
func (x *Index) Clear() {
	x.tags.Clear()
}
