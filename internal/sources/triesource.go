package sources

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is one suggestion held by a TrieSource, ranked by weight
type Entry struct {
	Word   string
	Weight int
}

// TrieSource is an in-memory, prefix-matched suggestion source. Ranking
// happens here, weight-descending; the widget renders whatever order a
// source hands it.
type TrieSource struct {
	mu    sync.RWMutex
	trie  *patricia.Trie
	limit int
}

// NewTrieSource creates a trie source returning at most limit entries per
// query; limit <= 0 means unlimited.
func NewTrieSource(limit int) *TrieSource {
	return &TrieSource{
		trie:  patricia.NewTrie(),
		limit: limit,
	}
}

// Add inserts or updates a word with its weight
func (s *TrieSource) Add(word string, weight int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trie.Insert(patricia.Prefix(strings.ToLower(word)), Entry{Word: word, Weight: weight})
}

// Search is a typeahead.SearchFunc. Matching is case-insensitive on the
// query's prefix.
func (s *TrieSource) Search(ctx context.Context, query string) ([]any, error) {
	s.mu.RLock()
	var entries []Entry
	err := s.trie.VisitSubtree(patricia.Prefix(strings.ToLower(query)), func(p patricia.Prefix, item patricia.Item) error {
		if e, ok := item.(Entry); ok {
			entries = append(entries, e)
		}
		return nil
	})
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		return entries[i].Word < entries[j].Word
	})
	if s.limit > 0 && len(entries) > s.limit {
		entries = entries[:s.limit]
	}

	items := make([]any, 0, len(entries))
	for _, e := range entries {
		items = append(items, e)
	}
	return items, nil
}

// Len returns the number of stored words
func (s *TrieSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	s.trie.Visit(func(patricia.Prefix, patricia.Item) error {
		n++
		return nil
	})
	return n
}
