// Package builder constructs deterministic core.Graph fixtures for tests,
// examples, benchmarks and the command-line driver.
//
// BuildGraph allocates n labelled vertices and applies Constructors in order:
//
//	g, err := builder.BuildGraph(12,
//	    []builder.BuilderOption{
//	        builder.WithSeed(7),
//	        builder.WithLabelScheme(builder.AlphaLabel),
//	        builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
//	    },
//	    builder.Path(),
//	    builder.RandomSparse(0.25),
//	)
//
// Topologies: Path, Cycle, Star, Complete, Grid(rows, cols), RandomSparse(p).
//
// Every constructor emits edges in a documented order, which matters because
// adjacency order drives visit order and tie-breaking in every search.
// With the same n, options, seed and constructor order the resulting graph is
// identical.
package builder
