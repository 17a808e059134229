// Package spin validates the spin sector of transformed diagrams and repairs
// it with a single SpinFlip correction.
package spin

import (
	"fmt"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// SectorError reports a transformation whose image stays inadmissible after
// the SpinFlip correction. The admissible set and the transformation set are
// inconsistent.
type SectorError struct {
	Diagram        domain.Key
	Transformation domain.Transformation
	Image          domain.Key
	Spin           domain.SpinIndices
}

func (e *SectorError) Error() string {
	return fmt.Sprintf("%s: %s applied to %s gives %s with spin %q",
		domain.ErrSpinSector, e.Transformation, e.Diagram, e.Image, e.Spin)
}

func (e *SectorError) Unwrap() error { return domain.ErrSpinSector }

// Guard checks diagrams against a configured admissible set.
// An empty set admits every combination.
type Guard struct {
	admissible map[domain.SpinIndices]struct{}
}

// NewGuard creates a guard over the admissible combinations.
func NewGuard(admissible ...domain.SpinIndices) *Guard {
	set := make(map[domain.SpinIndices]struct{}, len(admissible))
	for _, s := range admissible {
		set[s] = struct{}{}
	}
	return &Guard{admissible: set}
}

// Admissible reports whether d lies in the admissible spin sector.
func (g *Guard) Admissible(d domain.Diagram) bool {
	if len(g.admissible) == 0 {
		return true
	}
	_, ok := g.admissible[d.SpinIndices()]
	return ok
}

// Resolve applies t to d. When the image is inadmissible, t is replaced by
// Compose(SpinFlip, t) and applied once more. The returned transformation is
// the one that produced the returned image.
func (g *Guard) Resolve(t domain.Transformation, d domain.Diagram) (domain.Transformation, domain.Diagram, error) {
	img := t.Apply(d)
	if g.Admissible(img) {
		return t, img, nil
	}

	fixed := domain.Compose(domain.SpinFlipT, t)
	img = fixed.Apply(d)
	if !g.Admissible(img) {
		return fixed, img, &SectorError{
			Diagram:        d.Key(),
			Transformation: fixed,
			Image:          img.Key(),
			Spin:           img.SpinIndices(),
		}
	}
	return fixed, img, nil
}
