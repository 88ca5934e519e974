package filter

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"

	"svw.info/wordsolver/internal/domain"
	"svw.info/wordsolver/internal/ports"
)

// Indexed answers constraint queries with bitsets over word indices.
// The index is built on first use for a dictionary and rebuilt only when a
// different dictionary is passed.
type Indexed struct {
	mu  sync.Mutex
	idx *index
}

func NewIndexed() *Indexed { return &Indexed{} }

// index mirrors a dictionary. Bit i of every set refers to dict.Words()[i].
type index struct {
	dict    *domain.Dictionary
	size    uint
	lengths map[int]*bitset.BitSet
	// at[p][l] holds the words with letter l at position p.
	at []map[rune]*bitset.BitSet
	// atLeast[l][k-1] holds the words with k or more copies of l.
	atLeast map[rune][]*bitset.BitSet
}

func buildIndex(dict *domain.Dictionary) *index {
	words := dict.Words()
	n := uint(len(words))
	ix := &index{
		dict:    dict,
		size:    n,
		lengths: map[int]*bitset.BitSet{},
		atLeast: map[rune][]*bitset.BitSet{},
	}
	for i, w := range words {
		wi := uint(i)
		l := utf8.RuneCountInString(w)
		if ix.lengths[l] == nil {
			ix.lengths[l] = bitset.New(n)
		}
		ix.lengths[l].Set(wi)
		for len(ix.at) < l {
			ix.at = append(ix.at, map[rune]*bitset.BitSet{})
		}
		seen := map[rune]int{}
		p := 0
		for _, r := range w {
			if ix.at[p][r] == nil {
				ix.at[p][r] = bitset.New(n)
			}
			ix.at[p][r].Set(wi)
			seen[r]++
			p++
		}
		for r, c := range seen {
			for len(ix.atLeast[r]) < c {
				ix.atLeast[r] = append(ix.atLeast[r], bitset.New(n))
			}
			for k := 0; k < c; k++ {
				ix.atLeast[r][k].Set(wi)
			}
		}
	}
	return ix
}

func (x *Indexed) indexFor(dict *domain.Dictionary) *index {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.idx == nil || x.idx.dict != dict {
		x.idx = buildIndex(dict)
	}
	return x.idx
}

func (x *Indexed) Filter(ctx context.Context, cs *domain.ConstraintSet, dict *domain.Dictionary) ([]string, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	if dict.Len() == 0 {
		return []string{}, ports.Stats{Duration: time.Since(start)}, nil
	}
	ix := x.indexFor(dict)
	set := ix.query(cs)
	words := dict.Words()
	out := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, words[i])
	}
	return out, ports.Stats{Scanned: len(words), Duration: time.Since(start)}, nil
}

func (ix *index) empty() *bitset.BitSet { return bitset.New(ix.size) }

// countAtLeast returns the words with k or more copies of l, nil when none.
func (ix *index) countAtLeast(l rune, k int) *bitset.BitSet {
	sets := ix.atLeast[l]
	if k < 1 || k > len(sets) {
		return nil
	}
	return sets[k-1]
}

func (ix *index) query(cs *domain.ConstraintSet) *bitset.BitSet {
	byLen := ix.lengths[len(cs.Pattern)]
	if byLen == nil {
		return ix.empty()
	}
	set := byLen.Clone()

	for p, l := range cs.Pattern {
		if l == 0 {
			continue
		}
		b := ix.at[p][l]
		if b == nil {
			return ix.empty()
		}
		set.InPlaceIntersection(b)
	}

	for l, positions := range cs.Forbidden {
		for _, p := range positions {
			if p < 0 || p >= len(cs.Pattern) {
				continue
			}
			if b := ix.at[p][l]; b != nil {
				set.InPlaceDifference(b)
			}
		}
	}

	for l := range cs.Excluded {
		if _, ok := cs.ExactCounts[l]; ok {
			continue
		}
		if b := ix.countAtLeast(l, 1); b != nil {
			set.InPlaceDifference(b)
		}
	}

	for _, l := range cs.Restricted() {
		if exact, ok := cs.ExactCounts[l]; ok {
			if !ix.requireAtLeast(set, l, exact) {
				return ix.empty()
			}
			if b := ix.countAtLeast(l, exact+1); b != nil {
				set.InPlaceDifference(b)
			}
			continue
		}
		if least, ok := cs.MinCounts[l]; ok {
			if !ix.requireAtLeast(set, l, least) {
				return ix.empty()
			}
			continue
		}
		if b := ix.countAtLeast(l, 1); b != nil {
			set.InPlaceDifference(b)
		}
	}
	return set
}

// requireAtLeast narrows set to words with k or more copies of l. It reports
// false when no word can qualify.
func (ix *index) requireAtLeast(set *bitset.BitSet, l rune, k int) bool {
	if k <= 0 {
		return true
	}
	b := ix.countAtLeast(l, k)
	if b == nil {
		return false
	}
	set.InPlaceIntersection(b)
	return true
}
