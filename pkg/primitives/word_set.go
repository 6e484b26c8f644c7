package primitives

import (
	"iter"
	"math/bits"
	"strings"
)

// Universe is an immutable vocabulary of candidate words with precomputed
// lookup tables for fast filtering. All WordSets referencing the same
// Universe share those tables; sets themselves are cheap bitset snapshots.
type Universe struct {
	words       []string
	indexByWord map[string]int
	maxLen      int
	nblocks     int

	// masks[maskBase(pos, cidx) + i] is block i of the bitset of words whose
	// letter at pos is minChar+cidx.
	masks []uint64

	// lengthMasks[n] is the bitset of words of length exactly n.
	lengthMasks map[int][]uint64
}

// NewUniverse builds a Universe over the given words. Duplicates are
// collapsed; word order is otherwise preserved.
func NewUniverse(all []string) *Universe {
	words := make([]string, 0, len(all))
	indexByWord := make(map[string]int, len(all))
	maxLen := 0
	for _, w := range all {
		if _, ok := indexByWord[w]; ok {
			continue
		}
		indexByWord[w] = len(words)
		words = append(words, w)
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}

	nblocks := (len(words) + 63) / 64
	u := &Universe{
		words:       words,
		indexByWord: indexByWord,
		maxLen:      maxLen,
		nblocks:     nblocks,
		masks:       make([]uint64, maxLen*numChars*nblocks),
		lengthMasks: make(map[int][]uint64),
	}

	for idx, w := range words {
		lm, ok := u.lengthMasks[len(w)]
		if !ok {
			lm = make([]uint64, nblocks)
			u.lengthMasks[len(w)] = lm
		}
		lm[idx/64] |= 1 << uint(idx%64)

		for pos, r := range w {
			if r < minChar || r > maxChar {
				continue
			}
			base := u.maskBase(pos, int(r-minChar))
			u.masks[base+idx/64] |= 1 << uint(idx%64)
		}
	}

	return u
}

func (u *Universe) maskBase(pos, cidx int) int {
	return (pos*numChars + cidx) * u.nblocks
}

// Size returns the number of distinct words in the universe.
func (u *Universe) Size() int {
	return len(u.words)
}

// Word returns the word at the given universe index.
func (u *Universe) Word(idx int) string {
	return u.words[idx]
}

// Index returns the universe index of a word, if present.
func (u *Universe) Index(word string) (int, bool) {
	idx, ok := u.indexByWord[word]
	return idx, ok
}

// FullSet returns the set containing every word in the universe.
func (u *Universe) FullSet() WordSet {
	set := make([]uint64, u.nblocks)
	for i := range set {
		set[i] = ^uint64(0)
	}
	if rem := len(u.words) % 64; rem != 0 && u.nblocks > 0 {
		set[u.nblocks-1] = (1 << uint(rem)) - 1
	}
	return WordSet{u: u, set: set, count: len(u.words)}
}

// WordSet is a subset of a Universe's words, stored as a bitset. The zero
// value is unusable; sets originate from Universe.FullSet and shrink through
// the filtering methods, each of which returns a fresh snapshot (the
// receiver is never mutated).
type WordSet struct {
	u     *Universe
	set   []uint64
	count int
}

// Count returns the number of words in the set.
func (w WordSet) Count() int {
	return w.count
}

// IsEmpty reports whether the set has no words.
func (w WordSet) IsEmpty() bool {
	return w.count == 0
}

// Contains checks if a word is in the set.
func (w WordSet) Contains(word string) bool {
	idx, ok := w.u.indexByWord[word]
	if !ok {
		return false
	}
	return w.set[idx/64]&(1<<uint(idx%64)) != 0
}

// Clone returns an independent copy of the set.
func (w WordSet) Clone() WordSet {
	set := make([]uint64, len(w.set))
	copy(set, w.set)
	return WordSet{u: w.u, set: set, count: w.count}
}

func (w WordSet) intersect(mask []uint64) WordSet {
	if mask == nil {
		return WordSet{u: w.u, set: make([]uint64, len(w.set)), count: 0}
	}
	newSet := make([]uint64, len(w.set))
	count := 0
	unchanged := true
	for i := range w.set {
		ns := w.set[i] & mask[i]
		newSet[i] = ns
		if ns != w.set[i] {
			unchanged = false
		}
		count += bits.OnesCount64(ns)
	}
	if unchanged {
		return w
	}
	return WordSet{u: w.u, set: newSet, count: count}
}

// OfLength keeps only the words of exactly the given length.
func (w WordSet) OfLength(n int) WordSet {
	return w.intersect(w.u.lengthMasks[n])
}

// FilterChar keeps only the words whose letter at pos is r.
func (w WordSet) FilterChar(r rune, pos int) WordSet {
	if r < minChar || r > maxChar || pos < 0 || pos >= w.u.maxLen {
		return w.intersect(nil)
	}
	base := w.u.maskBase(pos, int(r-minChar))
	return w.intersect(w.u.masks[base : base+w.u.nblocks])
}

// FilterAny keeps only the words whose letter at pos is in the constraint
// set. A full constraint is a no-op.
func (w WordSet) FilterAny(constraint *CharSet, pos int) WordSet {
	if constraint.IsFull() {
		return w
	}
	if constraint.Count() == 0 {
		return w.intersect(nil)
	}
	if pos < 0 || pos >= w.u.maxLen {
		return w.intersect(nil)
	}

	allowed := make([]uint64, w.u.nblocks)
	cbits := constraint.bits
	for cbits != 0 {
		cidx := bits.TrailingZeros32(cbits)
		cbits &= cbits - 1
		base := w.u.maskBase(pos, cidx)
		for i := 0; i < w.u.nblocks; i++ {
			allowed[i] |= w.u.masks[base+i]
		}
	}
	return w.intersect(allowed)
}

// CharsAt adds to accumulate every letter that appears at pos in some word
// of the set.
func (w WordSet) CharsAt(accumulate *CharSet, pos int) {
	if accumulate.IsFull() {
		return
	}
	if pos < 0 || pos >= w.u.maxLen {
		return
	}
	for cidx := 0; cidx < numChars; cidx++ {
		r := rune(minChar) + rune(cidx)
		if accumulate.Contains(r) {
			continue
		}
		base := w.u.maskBase(pos, cidx)
		for i := 0; i < w.u.nblocks; i++ {
			if w.set[i]&w.u.masks[base+i] != 0 {
				_ = accumulate.Add(r)
				break
			}
		}
	}
}

// CountWithCharAt returns how many words in the set have letter r at pos.
func (w WordSet) CountWithCharAt(r rune, pos int) int {
	if r < minChar || r > maxChar || pos < 0 || pos >= w.u.maxLen {
		return 0
	}
	base := w.u.maskBase(pos, int(r-minChar))
	count := 0
	for i := range w.set {
		count += bits.OnesCount64(w.set[i] & w.u.masks[base+i])
	}
	return count
}

// Without returns the set with one word removed.
func (w WordSet) Without(word string) WordSet {
	idx, ok := w.u.indexByWord[word]
	if !ok || w.set[idx/64]&(1<<uint(idx%64)) == 0 {
		return w
	}
	newSet := make([]uint64, len(w.set))
	copy(newSet, w.set)
	newSet[idx/64] &^= 1 << uint(idx%64)
	return WordSet{u: w.u, set: newSet, count: w.count - 1}
}

// Iterate returns a sequence of all words in the set, in universe order.
func (w WordSet) Iterate() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, block := range w.set {
			for block != 0 {
				tz := bits.TrailingZeros64(block)
				block &= block - 1
				if !yield(w.u.words[i*64+tz]) {
					return
				}
			}
		}
	}
}

// First returns some word in the set, or false if the set is empty.
func (w WordSet) First() (string, bool) {
	for i, block := range w.set {
		if block != 0 {
			return w.u.words[i*64+bits.TrailingZeros64(block)], true
		}
	}
	return "", false
}

// Words returns the set's contents as a slice, in universe order.
func (w WordSet) Words() []string {
	out := make([]string, 0, w.count)
	for word := range w.Iterate() {
		out = append(out, word)
	}
	return out
}

func (w WordSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for word := range w.Iterate() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(word)
	}
	sb.WriteByte('}')
	return sb.String()
}
