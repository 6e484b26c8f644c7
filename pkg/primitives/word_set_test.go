package primitives

import (
	"slices"
	"testing"

	"github.com/matryer/is"
)

func testUniverse(t *testing.T) *Universe {
	t.Helper()
	return NewUniverse([]string{"cat", "dog", "car", "cart", "dart", "cat"})
}

func TestUniverse_Dedup(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	is.Equal(u.Size(), 5) // "cat" listed twice collapses

	idx, ok := u.Index("cat")
	is.True(ok)
	is.Equal(u.Word(idx), "cat")

	_, ok = u.Index("bird")
	is.True(!ok)
}

func TestWordSet_FullSet(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	full := u.FullSet()
	is.Equal(full.Count(), 5)
	is.True(full.Contains("cart"))
	is.True(!full.IsEmpty())
}

func TestWordSet_OfLength(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	three := u.FullSet().OfLength(3)
	is.Equal(three.Count(), 3)
	is.True(three.Contains("cat"))
	is.True(three.Contains("dog"))
	is.True(three.Contains("car"))
	is.True(!three.Contains("cart"))

	none := u.FullSet().OfLength(7)
	is.True(none.IsEmpty())
}

func TestWordSet_FilterChar(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	cWords := u.FullSet().FilterChar('c', 0)
	is.Equal(slices.Sorted(slices.Values(cWords.Words())), []string{"car", "cart", "cat"})

	// Filtering never mutates the receiver.
	full := u.FullSet()
	_ = full.FilterChar('d', 0)
	is.Equal(full.Count(), 5)

	is.True(full.FilterChar('z', 0).IsEmpty())
	is.True(full.FilterChar('c', 20).IsEmpty())
}

func TestWordSet_FilterAny(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	cs := NewCharSet()
	cs.Add('c')
	cs.Add('d')
	is.Equal(u.FullSet().FilterAny(cs, 0).Count(), 5)

	only := NewCharSet()
	only.Add('d')
	is.Equal(slices.Sorted(slices.Values(u.FullSet().FilterAny(only, 0).Words())), []string{"dart", "dog"})

	// A full constraint set is a no-op.
	is.Equal(u.FullSet().FilterAny(FullCharSet(), 0).Count(), 5)

	// An empty constraint empties the set.
	is.True(u.FullSet().FilterAny(NewCharSet(), 0).IsEmpty())
}

func TestWordSet_CharsAt(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	cs := NewCharSet()
	u.FullSet().OfLength(3).CharsAt(cs, 0)
	is.Equal(cs.String(), "{cd}")

	cs2 := NewCharSet()
	u.FullSet().CharsAt(cs2, 3) // only "cart" and "dart" reach position 3
	is.Equal(cs2.String(), "{t}")
}

func TestWordSet_CountWithCharAt(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	full := u.FullSet()
	is.Equal(full.CountWithCharAt('c', 0), 3)
	is.Equal(full.CountWithCharAt('t', 2), 1) // "cat" only
	is.Equal(full.CountWithCharAt('q', 0), 0)
}

func TestWordSet_Without(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	full := u.FullSet()
	smaller := full.Without("dog")
	is.Equal(smaller.Count(), 4)
	is.True(!smaller.Contains("dog"))
	is.Equal(full.Count(), 5)

	is.Equal(smaller.Without("missing").Count(), 4)
}

func TestWordSet_IterateAndFirst(t *testing.T) {
	is := is.New(t)
	u := testUniverse(t)

	set := u.FullSet().OfLength(4)
	var words []string
	for w := range set.Iterate() {
		words = append(words, w)
	}
	is.Equal(words, []string{"cart", "dart"}) // universe order

	first, ok := set.First()
	is.True(ok)
	is.Equal(first, "cart")

	_, ok = u.FullSet().OfLength(9).First()
	is.True(!ok)
}

func TestUniverse_ManyWords(t *testing.T) {
	// More than 64 words exercises multi-block bitsets.
	is := is.New(t)

	var words []string
	for a := 'a'; a <= 'z'; a++ {
		for b := 'a'; b <= 'e'; b++ {
			words = append(words, string(a)+string(b)+"x")
		}
	}
	u := NewUniverse(words)
	is.Equal(u.Size(), 26*5)

	full := u.FullSet()
	is.Equal(full.Count(), 26*5)
	is.Equal(full.FilterChar('q', 0).Count(), 5)
	is.Equal(full.CountWithCharAt('x', 2), 26*5)

	cs := NewCharSet()
	full.CharsAt(cs, 1)
	is.Equal(cs.Count(), 5)
}
