/*
Package orbitsieve reduces a finite universe of diagrams to its independent
representatives under a group of symmetry transformations.

Given a set of generator transformations, the engine closes them into a
finite group (comparing elements by the mapping they induce on the
universe), then walks the universe in enumeration order. Each unresolved
diagram opens an orbit: its parity-linked partners are collected, a
causality oracle decides whether the whole orbit vanishes, and every group
image is recorded in a dependency table as Zero or as Related to the seed.
Seeds become Independent.

# Usage

	u := keldysh.NewUniverse(keldysh.Options{ParticleHole: true})
	eng, err := orbitsieve.New(u,
		orbitsieve.WithOracle(keldysh.Causality{}),
		orbitsieve.WithAdmissibleSpins(keldysh.AdmissibleSpins()...),
	)
	if err != nil {
		log.Fatal(err)
	}
	res, err := eng.Classify(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Orbits, "independent of", res.Total)

Each Related entry satisfies the round-trip law: applying its
transformation to the representative yields the entry's own key. See
table.Table.Verify.

# Packages

  - pkg/domain: transformations, diagrams, table entries and sentinel errors.
  - pkg/symmetry: group closure and generator modes.
  - pkg/spin: spin-sector guard.
  - pkg/sieve: the orbit sieve.
  - pkg/table: the dependency table.
  - pkg/adapters: reference universes (keldysh, memory).
  - pkg/observability: Prometheus metrics fed by sieve hooks.
*/
package orbitsieve
