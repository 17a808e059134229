// Package table holds the dependency table produced by the orbit sieve.
//
// The table is pre-populated with an Unresolved entry for every key of the
// universe, mutated only through Offer, and frozen once classification ends.
// Offer applies the quality rule: an Unresolved entry takes any candidate, a
// Related entry derived through a Composite yields to a primitive candidate,
// and everything else (Zero, Independent, primitive or parity derivations)
// is kept.
package table

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// Table maps keys to classification entries in population order.
type Table struct {
	mu      sync.RWMutex
	order   []domain.Key
	index   map[domain.Key]int
	entries []domain.Entry
	frozen  bool
}

// New creates a table with an Unresolved entry for every key, keeping the
// first occurrence of duplicates.
func New(keys []domain.Key) *Table {
	t := &Table{
		order:   make([]domain.Key, 0, len(keys)),
		index:   make(map[domain.Key]int, len(keys)),
		entries: make([]domain.Entry, 0, len(keys)),
	}
	for _, k := range keys {
		if _, ok := t.index[k]; ok {
			continue
		}
		t.index[k] = len(t.order)
		t.order = append(t.order, k)
		t.entries = append(t.entries, domain.Entry{Key: k})
	}
	return t
}

// FromDiagrams creates a table over the keys of ds.
func FromDiagrams(ds []domain.Diagram) *Table {
	keys := make([]domain.Key, len(ds))
	for i, d := range ds {
		keys[i] = d.Key()
	}
	return New(keys)
}

// Len returns the number of keys.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Lookup returns the entry for key.
func (t *Table) Lookup(key domain.Key) (domain.Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[key]
	if !ok {
		return domain.Entry{}, fmt.Errorf("%w: %s", domain.ErrUnknownKey, key)
	}
	return t.entries[i], nil
}

// Unresolved reports whether key has not been classified yet.
func (t *Table) Unresolved(key domain.Key) (bool, error) {
	e, err := t.Lookup(key)
	if err != nil {
		return false, err
	}
	return e.Status == domain.StatusUnresolved, nil
}

// Offer proposes candidate for its key and reports whether it was written,
// together with the entry it replaced. The compare and write happen under
// the table lock.
func (t *Table) Offer(candidate domain.Entry) (bool, domain.Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return false, domain.Entry{}, domain.ErrTableFrozen
	}
	i, ok := t.index[candidate.Key]
	if !ok {
		return false, domain.Entry{}, fmt.Errorf("%w: %s", domain.ErrUnknownKey, candidate.Key)
	}

	prev := t.entries[i]
	if !improves(prev, candidate) {
		return false, prev, nil
	}
	t.entries[i] = candidate
	return true, prev, nil
}

func improves(prev, candidate domain.Entry) bool {
	switch prev.Status {
	case domain.StatusUnresolved:
		return candidate.Status != domain.StatusUnresolved
	case domain.StatusRelated:
		return prev.Transformation.IsComposite() &&
			candidate.Status == domain.StatusRelated &&
			candidate.Transformation.IsPrimitive()
	default:
		return false
	}
}

// Freeze makes the table read-only.
func (t *Table) Freeze() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = true
}

// Frozen reports whether Freeze was called.
func (t *Table) Frozen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.frozen
}

// Keys returns the keys in population order.
func (t *Table) Keys() []domain.Key {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.Key, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns a snapshot of all entries in population order.
func (t *Table) Entries() []domain.Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Independent returns the keys of independent entries in population order.
func (t *Table) Independent() []domain.Key {
	var out []domain.Key
	for _, e := range t.Entries() {
		if e.IsIndependent() {
			out = append(out, e.Key)
		}
	}
	return out
}

// Count returns the number of entries with the given classification.
func (t *Table) Count(c domain.Classification) int {
	n := 0
	for _, e := range t.Entries() {
		if e.Classification() == c {
			n++
		}
	}
	return n
}

// Resolve follows Related links from key until it reaches an independent or
// zero entry, returning that entry and the number of hops taken.
func (t *Table) Resolve(key domain.Key) (domain.Entry, int, error) {
	limit := t.Len()
	cur := key
	for hops := 0; hops <= limit; hops++ {
		e, err := t.Lookup(cur)
		if err != nil {
			return domain.Entry{}, hops, err
		}
		switch {
		case e.Status == domain.StatusZero, e.IsIndependent():
			return e, hops, nil
		case e.Status == domain.StatusUnresolved:
			return e, hops, fmt.Errorf("%s is unresolved", cur)
		}
		cur = e.Representative
	}
	return domain.Entry{}, limit, fmt.Errorf("related chain from %s does not terminate", key)
}

// Verify checks the classification against the diagrams it was built from:
// every key is classified, every Related chain ends at an independent entry,
// and t.Apply(representative) reproduces the key.
func (t *Table) Verify(ds []domain.Diagram) error {
	byKey := make(map[domain.Key]domain.Diagram, len(ds))
	for _, d := range ds {
		byKey[d.Key()] = d
	}

	var errs []error
	for _, e := range t.Entries() {
		switch e.Status {
		case domain.StatusUnresolved:
			errs = append(errs, fmt.Errorf("%s is unresolved", e.Key))
			continue
		case domain.StatusZero:
			continue
		}

		if _, _, err := t.Resolve(e.Key); err != nil {
			errs = append(errs, err)
			continue
		}
		rep, ok := byKey[e.Representative]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: representative %s not in universe", e.Key, e.Representative))
			continue
		}
		if got := e.Transformation.Apply(rep).Key(); got != e.Key {
			errs = append(errs, fmt.Errorf("%s: %s applied to %s gives %s", e.Key, e.Transformation, e.Representative, got))
		}
	}
	return errors.Join(errs...)
}
