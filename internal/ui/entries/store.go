// Package entries holds the scored candidate listing for the current
// directory. The store is not safe for concurrent use; like the rest of
// the session state it belongs to the update loop alone.
package entries

import (
	"sort"

	"github.com/junegunn/fzf/src/util"

	"burrow/internal/domain"
	"burrow/internal/fuzzy"
)

// scored pairs an entry with its arrival sequence number, which breaks
// score ties so equal-score entries keep their arrival order.
type scored struct {
	entry domain.Entry
	seq   int
}

// Store is the ordered collection of entries for one directory session
type Store struct {
	entries []scored
	nextSeq int
	query   string
	pattern []rune
	slab    *util.Slab
	matched int
	dirty   bool // sort deferred until the next snapshot
}

// NewStore creates an empty entry store
func NewStore() *Store {
	return &Store{
		slab: fuzzy.NewSlab(),
	}
}

// Append scores path against the current query and adds it to the
// collection. Sorting is deferred to the next Snapshot.
func (s *Store) Append(path string) {
	e := domain.Entry{Path: path}
	s.score(&e)
	s.entries = append(s.entries, scored{entry: e, seq: s.nextSeq})
	s.nextSeq++
	if e.Matched {
		s.matched++
	}
	s.dirty = true
}

// RescoreAll re-scores every entry against query and resorts. Entries
// that no longer match are kept but excluded from snapshots; their old
// scores are never retained.
func (s *Store) RescoreAll(query string) {
	s.query = query
	s.pattern = fuzzy.NewPattern(query)
	s.matched = 0
	for i := range s.entries {
		s.score(&s.entries[i].entry)
		if s.entries[i].entry.Matched {
			s.matched++
		}
	}
	s.dirty = true
}

// Clear empties the collection, used on directory change. The query is
// reset too: a fresh directory starts with a fresh prompt.
func (s *Store) Clear() {
	s.entries = s.entries[:0]
	s.nextSeq = 0
	s.query = ""
	s.pattern = nil
	s.matched = 0
	s.dirty = false
}

// Snapshot returns up to maxRows matched entries by rank, best first.
// maxRows <= 0 returns all matched entries.
func (s *Store) Snapshot(maxRows int) []domain.Entry {
	s.ensureSorted()

	n := s.matched
	if maxRows > 0 && maxRows < n {
		n = maxRows
	}
	out := make([]domain.Entry, 0, n)
	for i := 0; i < len(s.entries) && len(out) < n; i++ {
		if !s.entries[i].entry.Matched {
			break // unmatched entries sort after all matched ones
		}
		out = append(out, s.entries[i].entry)
	}
	return out
}

// Len returns the total number of entries, matched or not
func (s *Store) Len() int {
	return len(s.entries)
}

// MatchedLen returns how many entries match the current query
func (s *Store) MatchedLen() int {
	return s.matched
}

// Query returns the query the entries are currently scored against
func (s *Store) Query() string {
	return s.query
}

func (s *Store) score(e *domain.Entry) {
	res, ok := fuzzy.Match(e.Path, s.pattern, s.slab)
	e.Matched = ok
	if ok {
		e.Score = res.Score
		e.Positions = res.Positions
	} else {
		e.Score = 0
		e.Positions = nil
	}
}

// ensureSorted orders entries matched-first, score descending, arrival
// order on ties. The seq comparison makes the order deterministic
// regardless of how many sorts came before.
func (s *Store) ensureSorted() {
	if !s.dirty {
		return
	}
	sort.Slice(s.entries, func(i, j int) bool {
		a, b := &s.entries[i], &s.entries[j]
		if a.entry.Matched != b.entry.Matched {
			return a.entry.Matched
		}
		if a.entry.Score != b.entry.Score {
			return a.entry.Score > b.entry.Score
		}
		return a.seq < b.seq
	})
	s.dirty = false
}
