package trie

// rack tracks how many of each letter remain available during a search.
type rack map[rune]int

// newRack counts the letters of a rack string and records their
// first-occurrence order, which the exact search walks so that each
// distinct letter is tried deterministically.
func newRack(letters string) (rack, []rune) {
	counts := make(rack, len(letters))
	uniq := make([]rune, 0, len(letters))
	for _, letter := range letters {
		if counts[letter] == 0 {
			uniq = append(uniq, letter)
		}
		counts[letter]++
	}
	return counts, uniq
}

// Search returns every stored word that can be assembled from the rack
// letters plus at most wildcards arbitrary substitutions. Each rack letter
// may be consumed at most as often as it occurs in letters; each wildcard
// stands in for exactly one letter of any value. A zero or negative budget
// is the same as no wildcards at all and falls back to SearchExact.
//
// Results never contain a word twice and come out in insertion-order
// depth-first traversal order.
func (t *Trie) Search(letters string, wildcards int) []string {
	if wildcards <= 0 {
		return t.SearchExact(letters)
	}
	counts, _ := newRack(t.Normalise(letters))
	matches := make([]string, 0)
	t.root.searchWild(counts, wildcards, &matches)
	return matches
}

// SearchExact returns every stored word that can be assembled from the rack
// letters alone, each letter consumed at most as often as it occurs in
// letters. It is equivalent to Search with a zero wildcard budget.
func (t *Trie) SearchExact(letters string) []string {
	counts, uniq := newRack(t.Normalise(letters))
	matches := make([]string, 0)
	t.root.searchExact(counts, uniq, &matches)
	return matches
}

// searchWild descends into every child exactly once: through the rack when
// the child's letter still has a count left, otherwise through the wildcard
// budget while it lasts. A wildcard is never spent on a letter the rack
// could cover, and the budget never goes negative.
func (n *node) searchWild(letters rack, wildcards int, matches *[]string) {
	if n.terminal {
		*matches = append(*matches, n.word())
	}
	for _, letter := range n.order {
		child := n.children[letter]
		switch {
		case letters[letter] > 0:
			letters[letter]--
			child.searchWild(letters, wildcards, matches)
			letters[letter]++
		case wildcards > 0:
			child.searchWild(letters, wildcards-1, matches)
		}
	}
}

// searchExact tries each distinct rack letter at most once per node.
// Deeper calls re-offer a letter for as long as its count lasts, so a
// repeated rack letter still spells repeated letters in a word.
func (n *node) searchExact(letters rack, uniq []rune, matches *[]string) {
	if n.terminal {
		*matches = append(*matches, n.word())
	}
	for _, letter := range uniq {
		if letters[letter] == 0 {
			continue
		}
		child, ok := n.children[letter]
		if !ok {
			continue
		}
		letters[letter]--
		child.searchExact(letters, uniq, matches)
		letters[letter]++
	}
}
