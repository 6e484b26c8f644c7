package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	minChar  = 'a'
	maxChar  = 'z'
	numChars = int(maxChar-minChar) + 1
)

// CharSet efficiently represents a set of lowercase letters.
//
// Fill words never contain anything outside a-z, so a single 32-bit word
// covers the whole alphabet.
type CharSet struct {
	bits uint32
}

// NewCharSet returns an empty character set over a-z.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// FullCharSet is the set containing every letter a-z.
func FullCharSet() *CharSet {
	return &CharSet{bits: (1 << numChars) - 1}
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}
	c.bits |= 1 << uint(r-minChar)
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	c.bits |= other.bits
}

// Contains checks if a character is in the set.
func (c *CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	return c.bits&(1<<uint(r-minChar)) != 0
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.bits == (1<<numChars)-1
}

// Capacity returns the number of characters the set can hold.
func (c *CharSet) Capacity() int {
	return numChars
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return bits.OnesCount32(c.bits)
}

func (c *CharSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for r := rune(minChar); r <= maxChar; r++ {
		if c.Contains(r) {
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
