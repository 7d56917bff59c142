package transition

import (
	"github.com/rs/zerolog"

	"github.com/phbasler/BSMPT-sub002/internal/bouncedrv"
	"github.com/phbasler/BSMPT-sub002/internal/gw"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/phase"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
	"github.com/phbasler/BSMPT-sub002/internal/thermo"
)

// TransitionTracer runs the full pipeline over one effective potential
// (spec section 4.8): phase tracing, coexisting-pair discovery, bounce
// action scans, derived temperatures/strength, and gravitational-wave
// prediction.
type TransitionTracer struct {
	Cfg Config
}

// New builds a TransitionTracer from cfg.
func New(cfg Config) *TransitionTracer {
	return &TransitionTracer{Cfg: cfg}
}

// Trace runs the pipeline end to end and returns one Result (spec
// section 4.8).
func (tt *TransitionTracer) Trace(pot potential.Potential) (*Result, error) {
	log := tt.Cfg.Logger

	vac := phase.BuildVacuum(pot, tt.Cfg.TLow, tt.Cfg.THigh, tt.Cfg.Vacuum)
	log.Info().
		Str("tracingStatus", vac.TracingStatus.String()).
		Str("coexPairStatus", vac.CoexPairStatus.String()).
		Int("numPhases", len(vac.Phases)).
		Int("numCoexPairs", len(vac.CoexPairs)).
		Msg("vacuum structure traced")

	result := &Result{Vacuum: vac, History: history(vac)}

	for _, pair := range vac.CoexPairs {
		pr := PairResult{Pair: pair}
		if pair.CritStatus == phase.StatusCritSuccess {
			tt.resolvePair(pot, vac, &pr, log)
		}
		result.Pairs = append(result.Pairs, pr)
	}

	return result, nil
}

// resolvePair runs the bounce scan, derived temperatures/strength, and
// (if enabled) GW stages for one coexisting pair already known to have
// a valid critical temperature.
func (tt *TransitionTracer) resolvePair(pot potential.Potential, vac *phase.Vacuum, pr *PairResult, log zerolog.Logger) {
	pair := pr.Pair
	falsePhase, truePhase := vac.Phases[pair.FalseIdx], vac.Phases[pair.TrueIdx]

	falseVac, err := falsePhase.PointAt(pair.Tc)
	if err != nil {
		pr.DriverErr = err
		return
	}
	trueVac, err := truePhase.PointAt(pair.Tc)
	if err != nil {
		pr.DriverErr = err
		return
	}

	driver, err := bouncedrv.Scan(pot, trueVac, falseVac, pair.TLow, pair.Tc, tt.Cfg.Driver, log)
	pr.Driver, pr.DriverErr = driver, err
	if err != nil || driver.Status != bouncedrv.StatusSuccess {
		return
	}

	temps, err := thermo.Derive(driver, pair.Tc, tt.Cfg.Thermo)
	pr.Temperatures, pr.ThermoErr = temps, err
	if err != nil {
		return
	}

	refT := temps.Tc
	switch {
	case temps.TpStatus == thermo.StatusSuccess:
		refT = temps.Tp
	case temps.TnExactStatus == thermo.StatusSuccess:
		refT = temps.TnExact
	case temps.TnApproxStatus == thermo.StatusSuccess:
		refT = temps.TnApprox
	default:
		return
	}
	pr.ReferenceT = refT

	trueAtRef, err := truePhase.PointAt(refT)
	if err != nil {
		return
	}
	falseAtRef, err := falsePhase.PointAt(refT)
	if err != nil {
		return
	}

	alpha := thermo.Alpha(pot, trueAtRef, falseAtRef, refT, tt.Cfg.Thermo)
	betaOverH := thermo.BetaOverH(driver, refT)
	vWall, vWallStatus := thermo.VWall(alpha, tt.Cfg.Thermo)

	pr.Strength = &thermo.Strength{T: refT, Alpha: alpha, BetaOverH: betaOverH, VWall: vWall, VWallStatus: vWallStatus}

	if !tt.Cfg.RunGWStage {
		return
	}

	spectrum := gw.NewSpectrum(refT, alpha, betaOverH, vWall, tt.Cfg.Thermo.EffectiveDOF, tt.Cfg.GW)
	pr.Spectrum = spectrum

	curve := tt.Cfg.SensitivityCurve
	if curve == nil {
		curve = gw.LISASensitivity
	}
	snr, err := gw.SNR(spectrum, curve, tt.Cfg.GW, numeric.DefaultQuadConfig())
	pr.SNR, pr.GWErr = snr, err
}
