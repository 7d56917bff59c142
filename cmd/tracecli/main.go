// Command tracecli runs the transition tracer over one of the
// package's built-in fixture potentials and prints a human-readable
// report, mirroring the teacher's phase-by-phase console report
// format.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rs/zerolog"

	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
	"github.com/phbasler/BSMPT-sub002/transition"
)

func main() {
	fixtureName := flag.String("fixture", "cubic", "fixture potential: cubic | twofield")
	tLow := flag.Float64("tlow", 0.0, "lower temperature bound")
	tHigh := flag.Float64("thigh", 2.0, "upper temperature bound")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	var pot potential.Potential
	switch *fixtureName {
	case "cubic":
		pot = fixtures.CubicBarrier{A: 3.0, Lambda: 0.8}
	case "twofield":
		pot = fixtures.TwoFieldZ2{M1_0: -1, M2_0: 4, CT1: 1, CT2: 0.2, Lambda: 0.5, Coupling: 0.3}
	default:
		log.Fatalf("tracecli: unknown fixture %q", *fixtureName)
	}

	cfg := transition.DefaultConfig(*tLow, *tHigh)
	if *verbose {
		cfg.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	}

	fmt.Println("=== Transition Tracer ===")
	fmt.Printf("fixture=%s  T in [%.3f, %.3f]\n\n", *fixtureName, *tLow, *tHigh)

	start := time.Now()
	result, err := transition.New(cfg).Trace(pot)
	if err != nil {
		log.Fatalf("tracecli: trace failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Println("=== Vacuum Structure ===")
	fmt.Printf("phases: %d   tracing status: %s   coexistence status: %s\n",
		len(result.Vacuum.Phases), result.Vacuum.TracingStatus, result.Vacuum.CoexPairStatus)
	fmt.Printf("history: %s\n\n", result.History)

	fmt.Println("=== Coexisting Pairs ===")
	for i, pr := range result.Pairs {
		pair := pr.Pair
		fmt.Printf("pair %d: false=p%d true=p%d Tc=%.6f critStatus=%s\n",
			i, pair.FalseIdx, pair.TrueIdx, pair.Tc, pair.CritStatus)

		if pr.DriverErr != nil {
			fmt.Printf("  bounce scan failed: %v\n", pr.DriverErr)
			continue
		}
		if pr.Driver == nil {
			continue
		}
		fmt.Printf("  bounce samples: %d  driverStatus=%s\n", len(pr.Driver.Samples), pr.Driver.Status)

		if pr.ThermoErr != nil {
			fmt.Printf("  temperature derivation failed: %v\n", pr.ThermoErr)
			continue
		}
		if pr.Temperatures != nil {
			fmt.Printf("  Tn(approx)=%.6f [%s]  Tn(exact)=%.6f [%s]  Tp=%.6f [%s]  Tf=%.6f [%s]\n",
				pr.Temperatures.TnApprox, pr.Temperatures.TnApproxStatus,
				pr.Temperatures.TnExact, pr.Temperatures.TnExactStatus,
				pr.Temperatures.Tp, pr.Temperatures.TpStatus,
				pr.Temperatures.Tf, pr.Temperatures.TfStatus)
		}
		if pr.Strength != nil {
			fmt.Printf("  reference T=%.6f  alpha=%.4f  beta/H=%.4f  v_wall=%.4f (status %d)\n",
				pr.ReferenceT, pr.Strength.Alpha, pr.Strength.BetaOverH, pr.Strength.VWall, pr.Strength.VWallStatus)
		}
		if pr.Spectrum != nil {
			if pr.GWErr != nil {
				fmt.Printf("  GW SNR failed: %v\n", pr.GWErr)
			} else {
				const sampleFreq = 1e-3 // Hz, representative LISA-band sample point
				fmt.Printf("  GW Omega h^2(%.0e Hz)=%.3e  SNR=%.4f\n", sampleFreq, pr.Spectrum.Total(sampleFreq), pr.SNR)
			}
		}
	}

	fmt.Println()
	fmt.Printf("columns: %v\n", result.ColumnLegend())
	fmt.Printf("total time: %.3fs\n", elapsed.Seconds())
}
