package symmetry

import (
	"fmt"
	"strings"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// ClosureError reports a generator set whose closure exceeded the bound.
type ClosureError struct {
	Generators []domain.Transformation
	Bound      int
}

func (e *ClosureError) Error() string {
	labels := make([]string, len(e.Generators))
	for i, g := range e.Generators {
		labels[i] = g.String()
	}
	return fmt.Sprintf("%s within %d elements (generators: %s)",
		domain.ErrClosureUnstable, e.Bound, strings.Join(labels, ", "))
}

func (e *ClosureError) Unwrap() error { return domain.ErrClosureUnstable }
