// Package session owns the accumulated state of one tracking session: the
// transaction table, the saved monthly snapshots, and the property
// registry. A Store belongs to exactly one caller context; it has no
// locking and is not safe for concurrent writers. A multi-user adaptation
// must hold one Store per session key.
package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rentbooks-dev/rentbooks/internal/id"
	"github.com/rentbooks-dev/rentbooks/internal/model"
	"github.com/rentbooks-dev/rentbooks/internal/properties"
)

// Store holds session state. The ingestion pipeline never mutates rows
// after creation; post-hoc edits go through the Set* methods.
type Store struct {
	txns      []model.Transaction
	byID      map[string]int
	snapshots map[string]model.MonthlyStats
	registry  *properties.Registry
	seq       map[string]int // highest assigned sequence per "YYYY-MM"
}

// NewStore creates an empty Store over a property registry.
func NewStore(reg *properties.Registry) *Store {
	return &Store{
		byID:      make(map[string]int),
		snapshots: make(map[string]model.MonthlyStats),
		registry:  reg,
		seq:       make(map[string]int),
	}
}

// Restore creates a Store pre-populated with previously serialized
// transactions. Existing IDs are kept and the per-month sequences resume
// after the highest one seen.
func Restore(reg *properties.Registry, txns []model.Transaction) *Store {
	s := NewStore(reg)
	for _, t := range txns {
		if y, m, seq, err := id.ParseTxnID(t.ID); err == nil {
			key := model.MonthKey(y, m)
			if seq > s.seq[key] {
				s.seq[key] = seq
			}
		}
		s.txns = append(s.txns, t)
	}
	s.reindex()
	return s
}

// MergeResult reports what Merge did with a batch.
type MergeResult struct {
	Added   int
	Skipped int // duplicates of rows already in the table
}

// Merge appends new transactions to the table, skipping duplicates and
// assigning IDs. A row is a duplicate when an existing row has the same
// calendar date, an equal amount, and the same description ignoring case
// and surrounding space. The table stays sorted by date descending.
func (s *Store) Merge(txns []model.Transaction) MergeResult {
	var res MergeResult
	for _, t := range txns {
		if s.isDuplicate(t) {
			res.Skipped++
			continue
		}
		if t.ID == "" {
			year, month := t.YearMonth()
			key := model.MonthKey(year, month)
			s.seq[key]++
			t.ID = id.FormatTxnID(year, month, s.seq[key])
		}
		s.txns = append(s.txns, t)
		res.Added++
	}

	sort.SliceStable(s.txns, func(i, j int) bool {
		return s.txns[i].Date.After(s.txns[j].Date)
	})
	s.reindex()
	return res
}

// Transactions returns a copy of the table in display order.
func (s *Store) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Len returns the number of transactions in the table.
func (s *Store) Len() int { return len(s.txns) }

// Registry returns the session's property registry.
func (s *Store) Registry() *properties.Registry { return s.registry }

// FilterOptions selects a subset of the table. Zero values mean "no
// constraint".
type FilterOptions struct {
	Account     model.AccountTag
	Category    model.Category
	CapitalOnly bool
	PropertyID  string
}

// Filter returns the transactions matching every set constraint.
func (s *Store) Filter(opts FilterOptions) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.txns {
		if opts.Account != "" && t.Account != opts.Account {
			continue
		}
		if opts.Category != "" && t.Category != opts.Category {
			continue
		}
		if opts.CapitalOnly && !t.IsCapital {
			continue
		}
		if opts.PropertyID != "" && t.PropertyID != opts.PropertyID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SetCategory reassigns a transaction's category and re-derives its
// capital flag, keeping the two consistent.
func (s *Store) SetCategory(txnID string, cat model.Category) error {
	i, ok := s.byID[txnID]
	if !ok {
		return fmt.Errorf("unknown transaction %q", txnID)
	}
	s.txns[i].Category = cat
	s.txns[i].IsCapital = cat.IsCapital()
	return nil
}

// SetProperty assigns a transaction to a property. An empty ID clears the
// assignment; otherwise the property must exist in the registry.
func (s *Store) SetProperty(txnID, propertyID string) error {
	i, ok := s.byID[txnID]
	if !ok {
		return fmt.Errorf("unknown transaction %q", txnID)
	}
	if propertyID != "" && !s.registry.Exists(propertyID) {
		return fmt.Errorf("unknown property %q", propertyID)
	}
	s.txns[i].PropertyID = propertyID
	return nil
}

// SetNotes replaces a transaction's notes.
func (s *Store) SetNotes(txnID, notes string) error {
	i, ok := s.byID[txnID]
	if !ok {
		return fmt.Errorf("unknown transaction %q", txnID)
	}
	s.txns[i].Notes = notes
	return nil
}

func (s *Store) isDuplicate(t model.Transaction) bool {
	for _, existing := range s.txns {
		if sameDay(existing, t) &&
			existing.Amount.Equal(t.Amount) &&
			strings.EqualFold(strings.TrimSpace(existing.Description), strings.TrimSpace(t.Description)) {
			return true
		}
	}
	return false
}

func sameDay(a, b model.Transaction) bool {
	ay, am, ad := a.Date.Date()
	by, bm, bd := b.Date.Date()
	return ay == by && am == bm && ad == bd
}

func (s *Store) reindex() {
	s.byID = make(map[string]int, len(s.txns))
	for i, t := range s.txns {
		s.byID[t.ID] = i
	}
}
