package paramfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amps-tools/ampswizard/internal/run"
)

// Serialize renders a configuration as canonical AMPS_PARAM.in text. The
// output round-trips: parsing and hydrating it over a fresh default
// configuration reproduces every field emitted here.
//
// Fields of inactive variants are written as commented-out advanced
// parameters, so they are recovered on reload and switching a variant later
// never loses previously entered values. NSHELLS is only written in shells
// mode because its mere presence forces that mode on reload.
func Serialize(cfg *run.Config) string {
	w := newParamWriter()

	w.section("GENERAL")
	w.active("RUN_NAME", cfg.RunName)
	w.active("CALC_MODE", cfg.CalcMode)
	w.active("SPECIES", cfg.Species)
	w.active("CHARGE", fmtNum(cfg.Charge))
	w.active("MASS", fmtNum(cfg.Mass))

	w.section("FIELDS")
	w.active("B_MODEL", cfg.BModel)
	w.active("SW_PRESSURE", fmtNum(cfg.SWPressure))
	w.active("DST", fmtNum(cfg.Dst))
	w.active("IMF_BY", fmtNum(cfg.IMFBy))
	w.active("IMF_BZ", fmtNum(cfg.IMFBz))
	w.active("E_MODEL", cfg.EModel)
	w.active("KP", fmtNum(cfg.Kp))
	w.active("KP_SCALING", cfg.KpScaling)

	w.section("DOMAIN")
	w.active("DOMAIN_TYPE", cfg.DomainType)
	boxParam, surfaceParam := w.active, w.commented
	if cfg.DomainType == run.DomainSurface {
		boxParam, surfaceParam = w.commented, w.active
	}
	boxParam("XMIN", fmtNum(cfg.XMin))
	boxParam("XMAX", fmtNum(cfg.XMax))
	boxParam("YMIN", fmtNum(cfg.YMin))
	boxParam("YMAX", fmtNum(cfg.YMax))
	boxParam("ZMIN", fmtNum(cfg.ZMin))
	boxParam("ZMAX", fmtNum(cfg.ZMax))
	surfaceParam("SURFACE_MODEL", cfg.SurfaceModel)
	surfaceParam("SURFACE_SCALE", fmtNum(cfg.SurfaceScale))

	w.section("TIME")
	w.active("START_TIME", cfg.StartTime)
	w.active("DURATION", fmtNum(cfg.Duration))
	w.active("TIME_STEP", fmtNum(cfg.TimeStep))

	w.section("SPECTRUM")
	w.active("SPECTRUM_TYPE", cfg.SpectrumType)
	monoParam, lawParam := w.active, w.commented
	if cfg.SpectrumType == run.SpectrumPowerLaw {
		monoParam, lawParam = w.commented, w.active
	}
	monoParam("ENERGY", fmtNum(cfg.Energy))
	lawParam("E_MIN", fmtNum(cfg.EMin))
	lawParam("E_MAX", fmtNum(cfg.EMax))
	lawParam("VS_GAMMA", fmtNum(cfg.VSGamma))

	w.section("OUTPUT")
	w.active("OUTPUT_MODE", cfg.OutputMode)
	switch cfg.OutputMode {
	case run.OutputShells:
		w.active("NSHELLS", strconv.Itoa(cfg.NShells))
		w.list(w.active, "SHELL_RADII", cfg.ShellRadii)
		w.commented("TRAJ_INTERVAL", fmtNum(cfg.TrajInterval))
	case run.OutputPoints:
		w.list(w.commented, "SHELL_RADII", cfg.ShellRadii)
		w.commented("TRAJ_INTERVAL", fmtNum(cfg.TrajInterval))
	default:
		w.active("TRAJ_INTERVAL", fmtNum(cfg.TrajInterval))
		w.list(w.commented, "SHELL_RADII", cfg.ShellRadii)
	}
	w.active("OUTPUT_FORMAT", cfg.OutputFormat)
	w.active("APPEND_MODE", fmtBool(cfg.AppendMode))
	w.active("VERBOSE", fmtBool(cfg.Verbose))
	if cfg.OutputMode == run.OutputPoints {
		w.pointBlock(cfg.Points)
	}

	return w.String()
}

// paramWriter accumulates canonical keyword-file text.
type paramWriter struct {
	b strings.Builder
}

func newParamWriter() *paramWriter {
	return &paramWriter{}
}

var rule = commentMark + strings.Repeat("-", 63)

func (w *paramWriter) section(name string) {
	if w.b.Len() > 0 {
		w.b.WriteString("\n")
	}
	fmt.Fprintf(&w.b, "%s\n%s%s\n%s\n", rule, sectionMark, name, rule)
}

func (w *paramWriter) active(key, value string) {
	fmt.Fprintf(&w.b, "%-14s %s\n", key, value)
}

func (w *paramWriter) commented(key, value string) {
	fmt.Fprintf(&w.b, "%s %-12s %s\n", commentMark, key, value)
}

// list writes a numeric list parameter through the given emitter, skipping
// it entirely when the list is empty (an empty value is not recoverable).
func (w *paramWriter) list(emit func(key, value string), key string, vals []float64) {
	if len(vals) == 0 {
		return
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmtNum(v)
	}
	emit(key, strings.Join(parts, " "))
}

func (w *paramWriter) pointBlock(points string) {
	w.b.WriteString(blockBegin + "\n")
	for _, line := range strings.Split(points, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&w.b, "%s %s\n", pointKeyword, line)
	}
	w.b.WriteString(blockEnd + "\n")
}

func (w *paramWriter) String() string {
	return w.b.String()
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fmtBool(v bool) string {
	if v {
		return "T"
	}
	return "F"
}
