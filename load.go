package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// FromWords builds a trie with default settings from an in-memory word
// list.
func FromWords(words ...string) *Trie {
	t := New()
	t.Insert(words...)
	return t
}

// ReadWords inserts one word per line of r, trimming surrounding whitespace
// and skipping blank lines. It returns the number of words inserted. When
// reading fails mid-stream the error is returned and every word inserted up
// to that point stays in the trie.
func (t *Trie) ReadWords(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	inserted := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		t.insert(word)
		inserted++
	}
	if err := scanner.Err(); err != nil {
		return inserted, fmt.Errorf("read words: %w", err)
	}
	return inserted, nil
}

// LoadFile inserts every line of the named file, as ReadWords does.
func (t *Trie) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return t.ReadWords(f)
}

// Load builds a trie with default settings from a line-delimited word list
// file.
func Load(path string) (*Trie, error) {
	t := New()
	if _, err := t.LoadFile(path); err != nil {
		return nil, err
	}
	return t, nil
}
