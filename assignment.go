package xwfill

// Assignment is a partial mapping from slots to chosen words, indexed by
// the crossword's dense slot enumeration. It is owned by a single search
// stack; parallel branches each get their own.
type Assignment struct {
	words    []string // "" means unassigned
	assigned int
}

// NewAssignment returns an empty assignment for a puzzle with n slots.
func NewAssignment(n int) *Assignment {
	return &Assignment{words: make([]string, n)}
}

// Assigned reports whether slot x has a word.
func (a *Assignment) Assigned(x int) bool {
	return a.words[x] != ""
}

// Word returns the word assigned to slot x, or "" if unassigned.
func (a *Assignment) Word(x int) string {
	return a.words[x]
}

// Complete reports whether every slot has a non-empty word.
func (a *Assignment) Complete() bool {
	return a.assigned == len(a.words)
}

func (a *Assignment) set(x int, word string) {
	if a.words[x] == "" {
		a.assigned++
	}
	a.words[x] = word
}

func (a *Assignment) clear(x int) {
	if a.words[x] != "" {
		a.assigned--
	}
	a.words[x] = ""
}
