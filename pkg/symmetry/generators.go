package symmetry

import (
	"fmt"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// Mode selects one of the fixed generator lists.
type Mode string

const (
	// ModeDefault generates with the leg swaps and complex conjugation.
	ModeDefault Mode = "default"
	// ModeExtended replaces conjugation by the reality constraint, for the
	// second formalism.
	ModeExtended Mode = "extended"
)

// Generators returns the generator list of mode m.
func Generators(m Mode) ([]domain.Transformation, error) {
	switch m {
	case ModeDefault, "":
		return []domain.Transformation{
			domain.IdentityT,
			domain.SwapIncomingT,
			domain.SwapOutgoingT,
			domain.SwapBothT,
			domain.ConjugateT,
		}, nil
	case ModeExtended:
		return []domain.Transformation{
			domain.IdentityT,
			domain.SwapIncomingT,
			domain.SwapOutgoingT,
			domain.SwapBothT,
			domain.RealityConstraintT,
		}, nil
	default:
		return nil, fmt.Errorf("unknown generator mode %q (want %q or %q)", m, ModeDefault, ModeExtended)
	}
}
