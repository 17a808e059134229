package symmetry

import (
	"strings"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// Arena interns transformations by the key mapping they induce over a fixed
// ordered witness set.
type Arena struct {
	witnesses []domain.Diagram
	index     map[string]int
	elements  []domain.Transformation
}

// NewArena creates an empty arena over the given witnesses.
func NewArena(witnesses []domain.Diagram) *Arena {
	return &Arena{
		witnesses: witnesses,
		index:     make(map[string]int),
	}
}

// Signature returns the induced mapping of t as a comparable string.
func (a *Arena) Signature(t domain.Transformation) string {
	var sb strings.Builder
	for _, w := range a.witnesses {
		sb.WriteString(string(t.Apply(w).Key()))
		sb.WriteByte(0)
	}
	return sb.String()
}

// Intern stores t unless an operationally equal element is present.
// It returns the index of the stored element and whether t was new.
func (a *Arena) Intern(t domain.Transformation) (int, bool) {
	sig := a.Signature(t)
	if i, ok := a.index[sig]; ok {
		return i, false
	}
	a.index[sig] = len(a.elements)
	a.elements = append(a.elements, t)
	return len(a.elements) - 1, true
}

// Lookup returns the stored element operationally equal to t.
func (a *Arena) Lookup(t domain.Transformation) (domain.Transformation, bool) {
	i, ok := a.index[a.Signature(t)]
	if !ok {
		return domain.Transformation{}, false
	}
	return a.elements[i], true
}

// Same reports whether t1 and t2 induce the same mapping.
func (a *Arena) Same(t1, t2 domain.Transformation) bool {
	return a.Signature(t1) == a.Signature(t2)
}

// Len returns the number of interned elements.
func (a *Arena) Len() int { return len(a.elements) }
