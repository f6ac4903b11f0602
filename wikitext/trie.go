package wikitext

// trieTransition is one outgoing byte edge from a trie state.
type trieTransition struct {
	Character byte
	Next      int  // index into Trie.states, valid when IsFinal is false
	IsFinal   bool // true if matching Character completes a term here
	Value     interface{}
}

// Trie is a byte-indexed trie used for longest-prefix matching of protocols,
// namespace names, magic words and character entity names against raw
// wiki-text bytes. A Final transition has no continuation, so Find walks
// bytes from the root until it reaches a Final transition and that is the
// match; there is no backtracking.
type Trie struct {
	states [][]trieTransition
}

// NewTrie returns an empty trie with a single root state.
func NewTrie() *Trie {
	return &Trie{states: [][]trieTransition{nil}}
}

func (t *Trie) transition(state int, b byte) *trieTransition {
	for i := range t.states[state] {
		if t.states[state][i].Character == b {
			return &t.states[state][i]
		}
	}
	return nil
}

// AddCaseSensitiveTerm inserts term, reachable only by its exact byte
// sequence, associated with value. A term that extends an already inserted
// term is not inserted.
func (t *Trie) AddCaseSensitiveTerm(term string, value interface{}) {
	t.addTermInternal(term, value, false)
}

// AddTerm inserts term reachable both by its exact byte sequence and by
// every combination of simple case folding of its alphabetic bytes,
// associated with value. A term that extends an already inserted term is
// not inserted.
func (t *Trie) AddTerm(term string, value interface{}) {
	t.addTermInternal(term, value, true)
}

func (t *Trie) addTermInternal(term string, value interface{}, folded bool) {
	state := 0
	for i := 0; i < len(term); i++ {
		b := term[i]
		last := i == len(term)-1
		tr := t.transition(state, b)
		if tr == nil {
			next := -1
			if !last {
				next = len(t.states)
				t.states = append(t.states, nil)
			}
			t.states[state] = append(t.states[state], trieTransition{Character: b, Next: next})
			tr = &t.states[state][len(t.states[state])-1]
		}
		if tr.IsFinal && !last {
			return
		}
		if last {
			tr.IsFinal = true
			tr.Value = value
			tr.Next = -1
		} else if tr.Next == -1 && !tr.IsFinal {
			tr.Next = len(t.states)
			t.states = append(t.states, nil)
		}
		if folded {
			t.addFoldedByte(state, b, tr, last, value)
		}
		if !last {
			state = tr.Next
		}
	}
}

// addFoldedByte installs additional transitions at state for every simple
// case-fold equivalent of b, sharing the same downstream Next state as the
// canonical transition for b (or, on the final byte, the same terminal
// value) so a case-insensitive run of a term also matches.
func (t *Trie) addFoldedByte(state int, b byte, canonical *trieTransition, last bool, value interface{}) {
	for _, folded := range simpleFoldBytes(b) {
		if folded == b {
			continue
		}
		if existing := t.transition(state, folded); existing != nil {
			continue
		}
		entry := trieTransition{Character: folded}
		if last {
			entry.IsFinal = true
			entry.Value = value
			entry.Next = -1
		} else {
			entry.Next = canonical.Next
		}
		t.states[state] = append(t.states[state], entry)
	}
}

// Find matches text against the trie from its first byte, stopping at the
// first Final transition reached, and returns the matched length and its
// associated value. ok is false if no
// prefix of text matches any inserted term, in which case mismatchOffset is
// the length of the longest partial match explored before failure.
func (t *Trie) Find(text string) (length int, value interface{}, ok bool, mismatchOffset int) {
	state := 0
	bestLen := -1
	var bestValue interface{}
	i := 0
	for i < len(text) {
		tr := t.transition(state, text[i])
		if tr == nil {
			break
		}
		i++
		if tr.IsFinal {
			bestLen = i
			bestValue = tr.Value
			break
		}
		state = tr.Next
	}
	if bestLen == -1 {
		return 0, nil, false, i
	}
	return bestLen, bestValue, true, 0
}
