package cue

import (
	"github.com/samber/mo"
)

// Index is an immutable view over a loaded cue sequence. Loading a new
// subtitle source replaces the whole Index.
type Index struct {
	cues []Cue
}

// NewIndex copies cues into a new Index.
func NewIndex(cues []Cue) *Index {
	owned := make([]Cue, len(cues))
	copy(owned, cues)
	return &Index{cues: owned}
}

// Len returns the number of cues. A nil Index has none.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.cues)
}

// Cues returns a copy of the underlying sequence.
func (x *Index) Cues() []Cue {
	if x == nil {
		return nil
	}
	out := make([]Cue, len(x.cues))
	copy(out, x.cues)
	return out
}

func (x *Index) seq() []Cue {
	if x == nil {
		return nil
	}
	return x.cues
}

// Active returns the cue to display at t.
func (x *Index) Active(t float64) mo.Option[Cue] {
	if c, ok := FindActive(x.seq(), t); ok {
		return mo.Some(c)
	}
	return mo.None[Cue]()
}

// ActiveIndex is ActiveIndex over the indexed cues.
func (x *Index) ActiveIndex(t float64) int {
	return ActiveIndex(x.seq(), t)
}

// PreviousActiveIndex is PreviousActiveIndex over the indexed cues.
func (x *Index) PreviousActiveIndex(t float64) int {
	return PreviousActiveIndex(x.seq(), t)
}

// PreviousActive returns the PreviousActiveTarget for t.
func (x *Index) PreviousActive(t float64) mo.Option[float64] {
	return option(PreviousActiveTarget(x.seq(), t))
}

// Previous returns the PreviousTarget for t.
func (x *Index) Previous(t float64) mo.Option[float64] {
	return option(PreviousTarget(x.seq(), t))
}

// Next returns the NextTarget for t.
func (x *Index) Next(t float64) mo.Option[float64] {
	return option(NextTarget(x.seq(), t))
}

func option(t float64, ok bool) mo.Option[float64] {
	if !ok {
		return mo.None[float64]()
	}
	return mo.Some(t)
}
