// Package builder generates deterministic link-state topologies for tests,
// benchmarks and the lsroute gen command.
//
// A topology is assembled by BuildGraph from one or more Constructors (Ring,
// Path, Star, Grid, Complete, RandomSparse) under a resolved configuration:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformCost(1, 10)},
//		builder.RandomSparse(50, 0.1),
//	)
//
// Every adjacency is emitted as a pair of directed links, the way routers on
// a point-to-point link each advertise the other. Both directions share one
// drawn cost unless WithAsymmetricCost is set.
//
// Determinism: the same options, seed and constructor order always yield the
// same graph. Node IDs come from the ID scheme (default "0", "1", ...), except
// Grid which uses "r<row>c<col>" coordinates.
//
// Errors (sentinel):
//
//	– ErrTooFewNodes         a size parameter is below the constructor minimum.
//	– ErrInvalidProbability  RandomSparse p outside [0, 1].
//	– ErrNeedRandSource      a stochastic constructor ran without WithSeed/WithRand.
//	– ErrOptionViolation     a WithX option received a meaningless value.
//	– ErrConstructFailed     a nil constructor or a core insertion failure.
package builder
