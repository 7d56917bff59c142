// Package transition is the top-level facade: given an effective
// potential, it traces the vacuum structure, solves the bounce action
// across every coexisting phase pair, derives the characteristic
// temperatures and strength parameters, and predicts the resulting
// gravitational-wave signal (spec section 4.8).
package transition

import (
	"github.com/rs/zerolog"

	"github.com/phbasler/BSMPT-sub002/internal/bounce"
	"github.com/phbasler/BSMPT-sub002/internal/bouncedrv"
	"github.com/phbasler/BSMPT-sub002/internal/gw"
	"github.com/phbasler/BSMPT-sub002/internal/phase"
	"github.com/phbasler/BSMPT-sub002/internal/thermo"
)

// Config composes every sub-stage's config into one top-level set of
// knobs, mirroring the teacher's single-config-struct-per-pipeline
// shape (spec section 4.8).
type Config struct {
	TLow, THigh float64

	Vacuum   phase.VacuumConfig
	Bounce   bounce.Config
	Driver   bouncedrv.Config
	Thermo   thermo.Config
	GW       gw.Config

	// RunGWStage controls whether the (expensive) spectrum/SNR stage
	// runs for every resolved coexisting pair, or is skipped (spec
	// section 4.8 Non-goal: GW prediction may be disabled).
	RunGWStage bool

	// SensitivityCurve is the detector curve the SNR stage integrates
	// against; defaults to gw.LISASensitivity.
	SensitivityCurve gw.SensitivityCurve

	Logger zerolog.Logger
}

// DefaultConfig returns the defaults named in spec section 4.8/6.
func DefaultConfig(tLow, tHigh float64) Config {
	bounceCfg := bounce.DefaultConfig()
	driverCfg := bouncedrv.DefaultConfig()
	driverCfg.Bounce = bounceCfg
	return Config{
		TLow:             tLow,
		THigh:            tHigh,
		Vacuum:           phase.DefaultVacuumConfig(),
		Bounce:           bounceCfg,
		Driver:           driverCfg,
		Thermo:           thermo.DefaultConfig(),
		GW:               gw.DefaultConfig(),
		RunGWStage:       true,
		SensitivityCurve: gw.LISASensitivity,
		Logger:           zerolog.Nop(),
	}
}
