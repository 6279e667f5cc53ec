package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trie is a prefix tree over a word list, searchable by the multiset of
// letters available to spell words rather than by prefix alone. A Trie is
// built by sequential insertion and carries no internal locking: it must be
// treated as read-only before searches run concurrently.
type Trie struct {
	root  *node
	size  int
	nodes int
	// fold and normalised hold the caller's letter-equality policy; both
	// are off by default so letters are stored and compared verbatim.
	fold       bool
	normalised bool
}

// node is one letter appended to the prefix spelled by its ancestors. Each
// parent exclusively owns its children; the parent pointer is a non-owning
// link used only to rebuild the word on the way back up. The root carries
// no letter and no parent.
type node struct {
	letter   rune
	parent   *node
	children map[rune]*node
	// order keeps the children keys in insertion order, since map
	// iteration alone would make traversal order vary between runs.
	order    []rune
	terminal bool
}

func newNode(letter rune, parent *node) *node {
	return &node{
		letter:   letter,
		parent:   parent,
		children: make(map[rune]*node),
	}
}

// word rebuilds the string this node spells by walking the parent chain up
// to the root, which spells the empty string.
func (n *node) word() string {
	if n.parent == nil {
		return ""
	}
	return n.parent.word() + string(n.letter)
}

// New creates a new empty trie. By default words and racks are taken
// verbatim: case folding and diacritic normalisation are off until enabled.
func New() *Trie {
	return &Trie{root: newNode(0, nil), nodes: 1}
}

// CaseInsensitive sets the trie to lower-case inserted words and search
// racks.
func (t *Trie) CaseInsensitive() *Trie {
	t.fold = true
	return t
}

// CaseSensitive sets the trie to keep letter case as given.
func (t *Trie) CaseSensitive() *Trie {
	t.fold = false
	return t
}

// WithNormalisation sets the trie to strip diacritics from inserted words
// and search racks. For example, Jürgen is stored and found as Jurgen.
func (t *Trie) WithNormalisation() *Trie {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the trie to keep diacritics as given.
func (t *Trie) WithoutNormalisation() *Trie {
	t.normalised = false
	return t
}

// Normalise applies the trie's configured folding to s and returns the
// result. Callers comparing their own strings against stored words should
// pass them through Normalise when folding or normalisation is enabled.
func (t *Trie) Normalise(s string) string {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if stripped, _, err := transform.String(transformer, s); err == nil {
			s = stripped
		}
	}
	if t.fold {
		s = strings.ToLower(s)
	}
	return s
}

// Insert adds words to the trie. Nodes are created lazily, one per missing
// letter, and the node reached after the last letter is marked as a word
// end. Inserting the empty string marks the root itself. Re-inserting a
// word changes nothing, and nothing is ever removed.
func (t *Trie) Insert(words ...string) {
	for _, word := range words {
		t.insert(word)
	}
}

func (t *Trie) insert(word string) {
	current := t.root
	for _, letter := range t.Normalise(word) {
		child, ok := current.children[letter]
		if !ok {
			child = newNode(letter, current)
			current.children[letter] = child
			current.order = append(current.order, letter)
			t.nodes++
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// Contains reports whether word was inserted into the trie.
func (t *Trie) Contains(word string) bool {
	n := t.find(t.Normalise(word))
	return n != nil && n.terminal
}

// ContainsPrefix reports whether at least one inserted word equals or
// extends prefix.
func (t *Trie) ContainsPrefix(prefix string) bool {
	n := t.find(t.Normalise(prefix))
	return n != nil && (n.terminal || len(n.children) > 0)
}

// find descends along s letter by letter and returns the node the last
// letter ends on, or nil when the path leaves the tree.
func (t *Trie) find(s string) *node {
	current := t.root
	for _, letter := range s {
		if current = current.children[letter]; current == nil {
			return nil
		}
	}
	return current
}

// Words returns every stored word in insertion-order depth-first traversal.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.size)
	t.root.appendWords(&words)
	return words
}

func (n *node) appendWords(out *[]string) {
	if n.terminal {
		*out = append(*out, n.word())
	}
	for _, letter := range n.order {
		n.children[letter].appendWords(out)
	}
}

// Len returns the number of distinct words stored in the trie.
func (t *Trie) Len() int { return t.size }

// NumNodes returns the number of nodes in the tree, root included.
func (t *Trie) NumNodes() int { return t.nodes }
