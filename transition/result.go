package transition

import (
	"fmt"
	"strings"

	"github.com/phbasler/BSMPT-sub002/internal/bouncedrv"
	"github.com/phbasler/BSMPT-sub002/internal/gw"
	"github.com/phbasler/BSMPT-sub002/internal/phase"
	"github.com/phbasler/BSMPT-sub002/internal/thermo"
)

// PairResult is everything derived for one coexisting phase pair: the
// bounce-action scan, the characteristic temperatures, the strength
// parameters at the chosen reference temperature, and (if enabled) the
// predicted GW spectrum and its SNR (spec section 4.8).
type PairResult struct {
	Pair *phase.CoexPhases

	Driver       *bouncedrv.BounceSolution
	DriverErr    error
	Temperatures *thermo.Temperatures
	ThermoErr    error

	ReferenceT float64
	Strength   *thermo.Strength

	Spectrum *gw.Spectrum
	SNR      float64
	GWErr    error
}

// Result is the full output of one TransitionTracer.Trace call (spec
// section 4.8).
type Result struct {
	Vacuum  *phase.Vacuum
	Pairs   []PairResult
	History string
}

// ColumnLegend names the columns a caller would emit if flattening
// Result into one row per coexisting pair (spec section 4.8: "the
// engine never prescribes an output format, only a stable column
// legend").
func (r *Result) ColumnLegend() []string {
	return []string{
		"pair_id",
		"false_phase_id",
		"true_phase_id",
		"Tc",
		"Tn_approx",
		"Tn_exact",
		"Tp",
		"Tf",
		"alpha",
		"beta_over_H",
		"v_wall",
		"v_wall_status",
		"snr",
	}
}

// history walks the Vacuum's coexisting pairs, rendering a string of
// the form "p0-(pair0)->p1-(pair1)->p2" that names the sequence of
// phases a cooling universe would pass through (spec section 4.8).
// When phases branch or reconverge the walk follows the first
// pair touching each successive phase, in Vacuum.CoexPairs order.
func history(v *phase.Vacuum) string {
	if len(v.Phases) == 0 {
		return ""
	}
	visited := map[int]bool{}
	var sb strings.Builder
	cur := 0
	visited[cur] = true
	fmt.Fprintf(&sb, "p%d", cur)

	for {
		advanced := false
		for _, pair := range v.CoexPairs {
			var next int
			switch cur {
			case pair.FalseIdx:
				next = pair.TrueIdx
			case pair.TrueIdx:
				next = pair.FalseIdx
			default:
				continue
			}
			if visited[next] {
				continue
			}
			fmt.Fprintf(&sb, "-(%s)->p%d", pair.ID.String()[:8], next)
			visited[next] = true
			cur = next
			advanced = true
			break
		}
		if !advanced {
			break
		}
	}
	return sb.String()
}
