// Package config parses YAML instance files for host applications that
// drive the solver: points, distance-provider selection, and engine
// tunables. The engine itself never reads files; this package exists so
// front ends (CLIs, visualizers, services) share one instance format.
//
// Omitted parameters fall back to the engine defaults via optional pointer
// fields, and parameter ranges are validated with the engine's own rules so
// a file accepted here is accepted by Engine.Configure.
package config
