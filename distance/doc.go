// Package distance supplies the ACO engine with complete n×n distance
// matrices over a collection of points. The engine is agnostic to how
// distances were derived; providers in this package cover the supported
// metrics:
//
//   - Euclidean   — planar metric over (X, Y) coordinates.
//   - GreatCircle — haversine over geographic (lat, lng) degrees, in meters.
//   - Road        — road-network table lookup over HTTP with a graceful
//     fallback to GreatCircle on any provider failure.
//
// Every provider returns a *matrix.Dense with zero diagonal; Road matrices
// may be asymmetric, which the engine tolerates.
//
// Only Road performs I/O; it honors the supplied context and never fails
// configuration — degradation to the great-circle metric is reported through
// an injectable *slog.Logger instead.
package distance
