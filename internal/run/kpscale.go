package run

import "math"

// Kp scaling strategy tags, selected by the KP_SCALING keyword.
const (
	KpScaleLinear = "linear"
	KpScaleSqrt   = "sqrt"
)

// KpScale converts the Kp activity index into the cross-polar-cap potential
// (kV) used by the empirical convection field. Two published forms of the
// relation exist and the wizard supports both; neither is treated as the
// single correct one.
type KpScale interface {
	Potential(kp float64) float64
	Name() string
}

// LinearKpScale is the linear relation: phi = 20 + 13*Kp.
type LinearKpScale struct{}

func (LinearKpScale) Potential(kp float64) float64 { return 20 + 13*kp }
func (LinearKpScale) Name() string                 { return KpScaleLinear }

// SqrtKpScale is the square-root relation: phi = 20 + 27*sqrt(Kp).
type SqrtKpScale struct{}

func (SqrtKpScale) Potential(kp float64) float64 { return 20 + 27*math.Sqrt(kp) }
func (SqrtKpScale) Name() string                 { return KpScaleSqrt }

// ScaleFor returns the strategy selected by the configuration. Unknown tags
// fall back to the linear form, matching the hydrator's forgiving stance.
func (c *Config) ScaleFor() KpScale {
	if c.KpScaling == KpScaleSqrt {
		return SqrtKpScale{}
	}
	return LinearKpScale{}
}

// ConvectionPotential applies the selected strategy to the configured Kp.
func (c *Config) ConvectionPotential() float64 {
	return c.ScaleFor().Potential(c.Kp)
}
