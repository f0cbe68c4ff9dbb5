package config

import (
	"log/slog"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/distance"
)

// Provider names accepted in an instance file.
const (
	ProviderEuclidean   = "euclidean"
	ProviderGreatCircle = "greatcircle"
	ProviderRoad        = "road"
)

// Instance is the YAML shape of one solver instance: the points to tour,
// the distance provider to build the matrix with, and the engine tunables.
type Instance struct {
	// Provider selects the distance model: "euclidean", "greatcircle",
	// or "road". Empty defaults to "euclidean".
	Provider string `yaml:"provider"`

	// BaseURL is the routing-service endpoint; required when Provider is
	// "road", ignored otherwise.
	BaseURL string `yaml:"base_url"`

	// Points lists the instance vertices. At least two are required.
	Points []PointConfig `yaml:"points"`

	// Params holds the engine tunables; omitted fields take the engine
	// defaults.
	Params ParamsConfig `yaml:"params"`
}

// PointConfig is one vertex. For geographic providers X is latitude and Y
// is longitude, in degrees.
type PointConfig struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// ParamsConfig mirrors the engine parameters with optional fields: a nil
// pointer means "use the engine default" rather than "zero".
type ParamsConfig struct {
	Alpha   *float64 `yaml:"alpha"`
	Beta    *float64 `yaml:"beta"`
	Rho     *float64 `yaml:"rho"`
	NumAnts *int     `yaml:"num_ants"`
	Q       *float64 `yaml:"q"`
	Seed    *int64   `yaml:"seed"`
	Workers *int     `yaml:"workers"`
}

// EngineParams materializes the optional fields over the engine defaults.
// The result is not validated here; ParseInstanceYAML validates the full
// instance, and callers wiring params independently rely on the engine's
// own Configure validation.
func (p ParamsConfig) EngineParams() aco.Params {
	out := aco.DefaultParams()

	if p.Alpha != nil {
		out.Alpha = *p.Alpha
	}
	if p.Beta != nil {
		out.Beta = *p.Beta
	}
	if p.Rho != nil {
		out.Rho = *p.Rho
	}
	if p.NumAnts != nil {
		out.NumAnts = *p.NumAnts
	}
	if p.Q != nil {
		out.Q = *p.Q
	}
	if p.Seed != nil {
		out.Seed = *p.Seed
	}
	if p.Workers != nil {
		out.Workers = *p.Workers
	}

	return out
}

// EnginePoints converts the YAML points into provider points, preserving
// order.
func (in *Instance) EnginePoints() []distance.Point {
	pts := make([]distance.Point, len(in.Points))
	for i, p := range in.Points {
		pts[i] = distance.Point{ID: p.ID, X: p.X, Y: p.Y}
	}
	return pts
}

// DistanceProvider constructs the provider named by the instance. The
// logger is attached to the road provider's degradation path; pass nil to
// use its default.
func (in *Instance) DistanceProvider(logger *slog.Logger) distance.Provider {
	switch in.Provider {
	case ProviderGreatCircle:
		return distance.GreatCircle{}
	case ProviderRoad:
		return &distance.Road{BaseURL: in.BaseURL, Logger: logger}
	default:
		return distance.Euclidean{}
	}
}
