package run

// Discriminator values for the variant sections of a Config. The hydrator
// normalizes the incoming keyword values to these lowercase tags.
const (
	CalcModeTrajectory = "trajectory"
	CalcModeFlux       = "flux"

	DomainBox     = "box"
	DomainSurface = "surface"

	SpectrumMono     = "mono"
	SpectrumPowerLaw = "powerlaw"

	OutputPoints     = "points"
	OutputTrajectory = "trajectory"
	OutputShells     = "shells"
)

// Config is the full set of run parameters collected by the wizard. It maps
// one-to-one onto the AMPS_PARAM.in keyword file: the `amps` tag on each
// field names the keyword the paramfile codec reads and writes for it.
//
// Tag options: "positive" keeps only positive entries of a numeric list,
// "lower" normalizes the value to lowercase before storing (discriminators
// and model names).
type Config struct {
	// Identity (#GENERAL).
	RunName  string  `amps:"RUN_NAME" json:"run_name"`
	CalcMode string  `amps:"CALC_MODE,lower" json:"calc_mode"`
	Species  string  `amps:"SPECIES" json:"species"`
	Charge   float64 `amps:"CHARGE" json:"charge"`
	Mass     float64 `amps:"MASS" json:"mass"`

	// Field-model drivers (#FIELDS).
	BModel     string  `amps:"B_MODEL,lower" json:"b_model"`
	SWPressure float64 `amps:"SW_PRESSURE" json:"sw_pressure"`
	Dst        float64 `amps:"DST" json:"dst"`
	IMFBy      float64 `amps:"IMF_BY" json:"imf_by"`
	IMFBz      float64 `amps:"IMF_BZ" json:"imf_bz"`
	EModel     string  `amps:"E_MODEL,lower" json:"e_model"`
	Kp         float64 `amps:"KP" json:"kp"`
	KpScaling  string  `amps:"KP_SCALING,lower" json:"kp_scaling"`

	// Domain boundary (#DOMAIN). Both variants keep their fields populated
	// so switching DomainType mid-session never loses entered values.
	DomainType   string  `amps:"DOMAIN_TYPE,lower" json:"domain_type"`
	XMin         float64 `amps:"XMIN" json:"xmin"`
	XMax         float64 `amps:"XMAX" json:"xmax"`
	YMin         float64 `amps:"YMIN" json:"ymin"`
	YMax         float64 `amps:"YMAX" json:"ymax"`
	ZMin         float64 `amps:"ZMIN" json:"zmin"`
	ZMax         float64 `amps:"ZMAX" json:"zmax"`
	SurfaceModel string  `amps:"SURFACE_MODEL,lower" json:"surface_model"`
	SurfaceScale float64 `amps:"SURFACE_SCALE" json:"surface_scale"`

	// Temporal (#TIME).
	StartTime string  `amps:"START_TIME" json:"start_time"`
	Duration  float64 `amps:"DURATION" json:"duration"`
	TimeStep  float64 `amps:"TIME_STEP" json:"time_step"`

	// Energy spectrum (#SPECTRUM).
	SpectrumType string  `amps:"SPECTRUM_TYPE,lower" json:"spectrum_type"`
	Energy       float64 `amps:"ENERGY" json:"energy"`
	EMin         float64 `amps:"E_MIN" json:"e_min"`
	EMax         float64 `amps:"E_MAX" json:"e_max"`
	VSGamma      float64 `amps:"VS_GAMMA" json:"vs_gamma"`

	// Output (#OUTPUT). Points is the derived text blob collected from the
	// point block; it has no single-value keyword of its own.
	OutputMode   string    `amps:"OUTPUT_MODE,lower" json:"output_mode"`
	Points       string    `amps:"-" json:"points"`
	NShells      int       `amps:"NSHELLS" json:"n_shells"`
	ShellRadii   []float64 `amps:"SHELL_RADII,positive" json:"shell_radii"`
	TrajInterval float64   `amps:"TRAJ_INTERVAL" json:"traj_interval"`
	OutputFormat string    `amps:"OUTPUT_FORMAT,lower" json:"output_format"`
	AppendMode   bool      `amps:"APPEND_MODE" json:"append_mode"`
	Verbose      bool      `amps:"VERBOSE" json:"verbose"`
}

// NewConfig returns a Config populated with the built-in defaults. Every
// field has a defined fallback; hydration mutates this object in place.
func NewConfig() *Config {
	return &Config{
		RunName:  "new_run",
		CalcMode: CalcModeTrajectory,
		Species:  "proton",
		Charge:   1,
		Mass:     1.0073,

		BModel:     "dipole",
		SWPressure: 2.1,
		Dst:        -20,
		IMFBy:      0,
		IMFBz:      -2,
		EModel:     "corotation",
		Kp:         2,
		KpScaling:  KpScaleLinear,

		DomainType:   DomainBox,
		XMin:         -10,
		XMax:         10,
		YMin:         -10,
		YMax:         10,
		ZMin:         -10,
		ZMax:         10,
		SurfaceModel: "shue",
		SurfaceScale: 1.0,

		StartTime: "2000-01-01T00:00:00Z",
		Duration:  3600,
		TimeStep:  1,

		SpectrumType: SpectrumMono,
		Energy:       100,
		EMin:         10,
		EMax:         1000,
		VSGamma:      2,

		OutputMode:   OutputTrajectory,
		NShells:      0,
		ShellRadii:   []float64{2, 4, 6},
		TrajInterval: 60,
		OutputFormat: "ascii",
		AppendMode:   false,
		Verbose:      false,
	}
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	dup := *c
	dup.ShellRadii = append([]float64(nil), c.ShellRadii...)
	return &dup
}
