package main

import (
	"log/slog"

	"github.com/aretw0/orbitsieve"
	"github.com/aretw0/orbitsieve/internal/config"
	"github.com/aretw0/orbitsieve/pkg/adapters/keldysh"
	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/symmetry"
)

// newEngine wires the Keldysh reference universe from cfg.
func newEngine(cfg *config.Config, logger *slog.Logger, extra ...orbitsieve.Option) (*orbitsieve.Engine, error) {
	uopts, err := cfg.Universe()
	if err != nil {
		return nil, err
	}
	u := keldysh.NewUniverse(uopts)

	spins := make([]domain.SpinIndices, 0, len(cfg.AdmissibleSpins))
	for _, s := range cfg.AdmissibleSpins {
		spins = append(spins, domain.SpinIndices(s))
	}

	opts := []orbitsieve.Option{
		orbitsieve.WithMode(symmetry.Mode(cfg.Mode)),
		orbitsieve.WithOracle(keldysh.Causality{}),
		orbitsieve.WithAdmissibleSpins(spins...),
		orbitsieve.WithBound(cfg.ClosureBound),
		orbitsieve.WithWitnessLimit(cfg.WitnessLimit),
		orbitsieve.WithLogger(logger),
	}
	return orbitsieve.New(u, append(opts, extra...)...)
}
